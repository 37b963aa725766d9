package mail

import (
	"fmt"
	"net/smtp"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends plain-text mail over SMTP. When the SMTP settings are absent
// Send is a silent no-op: notification is best-effort everywhere it is used
// and must never fail a request.
type Mailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewMailer(host, port, user, password, from string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != "" && m.from != ""
}

func (m *Mailer) Send(msg Message) error {
	if !m.Enabled() {
		return nil
	}

	raw := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", m.from, msg.To, msg.Subject, msg.Body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	return smtp.SendMail(addr, auth, m.from, []string{msg.To}, []byte(raw))
}

// AuditReceipt confirms a security-audit request.
func AuditReceipt(to, name, websiteURL string) Message {
	return Message{
		To:      to,
		Subject: "Demande d'audit sécurité reçue",
		Body: fmt.Sprintf("Bonjour %s,\n\n"+
			"Votre demande d'audit sécurité a bien été reçue pour: %s.\n\n"+
			"Je reviens vers vous rapidement.", name, websiteURL),
	}
}

// QuoteReceipt confirms a devis request with the computed estimate.
func QuoteReceipt(to, name, estimateEuros string) Message {
	return Message{
		To:      to,
		Subject: "Demande de devis reçue",
		Body: fmt.Sprintf("Bonjour %s,\n\n"+
			"Votre demande de devis a bien été reçue. Estimation: %s.\n\n"+
			"Je reviens vers vous rapidement.", name, estimateEuros),
	}
}

// ClientAccess delivers portal credentials after an approval.
func ClientAccess(to, name, tempPassword, loginURL string) Message {
	return Message{
		To:      to,
		Subject: "Accès à votre espace client",
		Body: fmt.Sprintf("Bonjour %s,\n\n"+
			"Votre projet a été validé. Voici vos accès à l'espace client :\n\n"+
			"Lien: %s\n"+
			"Email: %s\n"+
			"Mot de passe temporaire: %s\n\n"+
			"Pour des raisons de sécurité, vous devrez changer ce mot de passe "+
			"lors de votre première connexion.", name, loginURL, to, tempPassword),
	}
}
