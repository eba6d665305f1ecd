package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/zondaerp/website/pkg/logging"
)

// MeetingFields is the flat field mapping rendered into the confirmation
// email. Optional client fields default to the site's long-standing
// placeholder texts so the template never shows blanks.
type MeetingFields struct {
	ToEmail  string
	ToName   string
	FromName string

	MeetingDate     string // long form, e.g. "lunes, 10 de junio de 2024"
	MeetingTime     string // "10:00 AM - 10:30 AM"
	MeetingDuration string // "30 minutos"
	MeetingTimezone string // "Hora de México (CST)"
	MeetingLink     string

	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ClientCompany string
	ClientPlan    string
	ClientNotes   string
}

// normalize fills optional client fields with their display fallbacks.
func (f *MeetingFields) normalize() {
	if f.ClientPhone == "" {
		f.ClientPhone = "No proporcionado"
	}
	if f.ClientCompany == "" {
		f.ClientCompany = "No proporcionado"
	}
	if f.ClientPlan == "" {
		f.ClientPlan = "Por definir"
	}
	if f.ClientNotes == "" {
		f.ClientNotes = "Ninguna"
	}
	if f.FromName == "" {
		f.FromName = "Equipo ZONDA ERP"
	}
}

// Service sends the transactional mail behind the scheduling widget and the
// contact form.
type Service struct {
	email  EmailSender
	logger *logging.Logger
}

// NewService creates a notification service.
func NewService(email EmailSender, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{email: email, logger: logger}
}

// SendConfirmation delivers the meeting confirmation to the client. It is
// attempted exactly once per booking; the caller downgrades failures to a
// warning banner rather than failing the booking.
func (s *Service) SendConfirmation(ctx context.Context, f MeetingFields) error {
	if s.email == nil {
		return fmt.Errorf("notify: email sender not configured")
	}
	f.normalize()

	msg := EmailMessage{
		To:      f.ToEmail,
		ToName:  f.ToName,
		ReplyTo: f.ClientEmail,
		Subject: "Confirmación de Reunión - ZONDA ERP",
		Body:    renderConfirmation(f),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: send confirmation: %w", err)
	}
	return nil
}

// ContactFields carries a contact-form message to the sales inbox.
type ContactFields struct {
	RecipientEmail string
	Name           string
	Email          string
	Phone          string
	Subject        string
	Message        string
}

// SendContactMessage forwards a contact-form submission to the configured
// recipient, with reply-to pointing back at the visitor.
func (s *Service) SendContactMessage(ctx context.Context, f ContactFields) error {
	if s.email == nil {
		return fmt.Errorf("notify: email sender not configured")
	}

	subject := f.Subject
	if subject == "" {
		subject = "Nuevo mensaje de contacto - ZONDA ERP"
	}
	phone := f.Phone
	if phone == "" {
		phone = "No proporcionado"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Nuevo mensaje desde el sitio web:\n\n")
	fmt.Fprintf(&b, "Nombre: %s\n", f.Name)
	fmt.Fprintf(&b, "Email: %s\n", f.Email)
	fmt.Fprintf(&b, "Teléfono: %s\n\n", phone)
	fmt.Fprintf(&b, "%s\n", f.Message)

	msg := EmailMessage{
		To:      f.RecipientEmail,
		ReplyTo: f.Email,
		Subject: subject,
		Body:    b.String(),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: send contact message: %w", err)
	}
	return nil
}

func renderConfirmation(f MeetingFields) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s,\n\n", f.ToName)
	b.WriteString("¡Tu reunión ha sido confirmada exitosamente!\n\n")
	b.WriteString("DETALLES DE LA REUNIÓN:\n")
	fmt.Fprintf(&b, "- Fecha: %s\n", f.MeetingDate)
	fmt.Fprintf(&b, "- Hora: %s\n", f.MeetingTime)
	fmt.Fprintf(&b, "- Duración: %s\n", f.MeetingDuration)
	fmt.Fprintf(&b, "- Zona horaria: %s\n", f.MeetingTimezone)
	b.WriteString("- Modalidad: Virtual por Google Meet\n\n")
	b.WriteString("ENLACE DE GOOGLE MEET:\n")
	fmt.Fprintf(&b, "%s\n\n", f.MeetingLink)
	b.WriteString("TUS DATOS:\n")
	fmt.Fprintf(&b, "- Nombre: %s\n", f.ClientName)
	fmt.Fprintf(&b, "- Email: %s\n", f.ClientEmail)
	fmt.Fprintf(&b, "- Teléfono: %s\n", f.ClientPhone)
	fmt.Fprintf(&b, "- Empresa: %s\n", f.ClientCompany)
	fmt.Fprintf(&b, "- Plan de interés: %s\n\n", f.ClientPlan)
	fmt.Fprintf(&b, "NOTAS ADICIONALES:\n%s\n\n", f.ClientNotes)
	b.WriteString("¡Esperamos conocer más sobre tu empresa y cómo ZONDA ERP puede ayudarte!\n\n")
	fmt.Fprintf(&b, "Saludos,\n%s\n", f.FromName)
	return b.String()
}
