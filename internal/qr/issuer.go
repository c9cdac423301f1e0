// internal/qr/issuer.go
package qr

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
)

const DefaultValiditySeconds = 5

// Issuer mints a fresh attendance session on a fixed cadence and keeps the
// latest scannable payload for the display endpoint. Single-owner lifecycle:
// Start once, Stop once; the next cycle is armed only after the current one
// resolves, so failed writes delay rather than overlap.
type Issuer struct {
	Store        SessionStore
	SessionLabel string
	Kind         models.SessionKind

	// Validity returns the current QR validity window. Called once per cycle
	// so settings edits take effect on the next reissue.
	Validity func() time.Duration

	Now func() time.Time

	mu         sync.Mutex
	payload    string
	validUntil time.Time

	stop chan struct{}
	done chan struct{}
}

func NewIssuer(store SessionStore, label string, validity func() time.Duration) *Issuer {
	return &Issuer{
		Store:        store,
		SessionLabel: label,
		Kind:         models.KindAttendance,
		Validity:     validity,
		Now:          time.Now,
	}
}

// Start launches the reissue loop. The first session is minted immediately.
func (i *Issuer) Start() {
	if i.stop != nil {
		return
	}
	i.stop = make(chan struct{})
	i.done = make(chan struct{})

	go func() {
		defer close(i.done)
		for {
			interval := i.issueOnce()
			timer := time.NewTimer(interval)
			select {
			case <-i.stop:
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// Stop halts the loop and waits for any in-flight issuance to finish, so no
// payload is published after teardown.
func (i *Issuer) Stop() {
	if i.stop == nil {
		return
	}
	close(i.stop)
	<-i.done
	i.stop = nil
}

// CurrentPayload returns the latest scannable payload and how many whole
// seconds it remains valid. ok is false before the first successful issuance.
func (i *Issuer) CurrentPayload() (payload string, secondsLeft int, ok bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.payload == "" {
		return "", 0, false
	}
	left := int(i.validUntil.Sub(i.Now()).Seconds())
	if left < 0 {
		left = 0
	}
	return i.payload, left, true
}

// issueOnce mints and publishes one session, returning the interval until
// the next attempt. Storage failures keep the previous payload on display
// and are retried on the same cadence.
func (i *Issuer) issueOnce() time.Duration {
	validity := i.Validity()
	now := i.Now()

	session := &models.AttendanceSession{
		SessionLabel: i.SessionLabel,
		Kind:         i.Kind,
		Token:        uuid.NewString(),
		IssuedAt:     now,
		ValidUntil:   now.Add(validity),
	}

	ctx, cancel := context.WithTimeout(context.Background(), validity)
	defer cancel()

	id, err := i.Store.Create(ctx, session)
	if err != nil {
		log.Printf("qr issuer: create session failed: %v", err)
		return validity
	}

	select {
	case <-i.stop:
		// stopped while the write was in flight, do not publish
		return validity
	default:
	}

	i.mu.Lock()
	i.payload = fmt.Sprintf("%s|%s", id, session.Token)
	i.validUntil = session.ValidUntil
	i.mu.Unlock()

	return validity
}
