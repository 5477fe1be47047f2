package mail

type BookingEmailData struct {
	Name string
}

type WaitlistEmailData struct {
	City string
}

type NewsletterEmailData struct{}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
