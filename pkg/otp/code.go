package otp

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	minCode = 100000
	maxCode = 999999
)

// Generator draws six digit confirmation codes, uniformly from [100000, 999999].
type Generator struct {
	random io.Reader
}

func NewGenerator() *Generator {
	return &Generator{
		random: rand.Reader,
	}
}

// NewGeneratorWithSource is used by tests to make codes predictable.
func NewGeneratorWithSource(random io.Reader) *Generator {
	return &Generator{
		random: random,
	}
}

func (g *Generator) Generate() (string, error) {
	n, err := rand.Int(g.random, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return "", fmt.Errorf("read random number: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+minCode), nil
}
