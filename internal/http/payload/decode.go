package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

// FormBinder is implemented by payloads that can also arrive as an HTML form post.
type FormBinder interface {
	BindForm(values url.Values)
}

var errFormNotSupported = errors.New("payload does not accept form data")

type Decoder struct{}

// DecodePayload fills object from a JSON or form encoded body and validates it when it implements validation.Validatable.
func (d Decoder) DecodePayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("close request body: %w", errClose)
		}
	}()

	if IsForm(r) {
		binder, ok := object.(FormBinder)
		if !ok {
			return errFormNotSupported
		}
		if err = r.ParseForm(); err != nil {
			return fmt.Errorf("parsing form payload: %w", err)
		}
		binder.BindForm(r.PostForm)
	} else {
		if err = json.NewDecoder(r.Body).Decode(object); err != nil {
			return fmt.Errorf("decoding json payload: %w", err)
		}
	}

	return validatePayload(object)
}

// IsForm reports whether the request body is an HTML form submission.
func IsForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
