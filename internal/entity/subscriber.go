package entity

import (
	"context"
	"time"
)

type WaitlistSubscriber struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type NewsletterSubscriber struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"` // page the signup came from, e.g. "not-ready"
	CreatedAt time.Time `json:"created_at"`
}

type WaitlistRepositoryInterface interface {
	Create(ctx context.Context, sub *WaitlistSubscriber) error
}

type NewsletterRepositoryInterface interface {
	Create(ctx context.Context, sub *NewsletterSubscriber) error
}
