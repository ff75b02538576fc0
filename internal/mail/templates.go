package mail

const confirmationSubject = "Your account confirmation code"

type confirmationData struct {
	Username string
	Code     string
}

const confirmationTemplates = `
{{define "confirmation_text"}}Hi {{.Username}},

your confirmation code is {{.Code}}.

Enter it on the confirmation page to activate your account.
{{end}}

{{define "confirmation_html"}}<!DOCTYPE html>
<html>
<body style="font-family: sans-serif;">
  <p>Hi {{.Username}},</p>
  <p>your confirmation code is</p>
  <h2 style="letter-spacing: 4px;">{{.Code}}</h2>
  <p>Enter it on the confirmation page to activate your account.</p>
</body>
</html>
{{end}}
`
