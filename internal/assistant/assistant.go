// Package assistant routes an inbound message to the reminder operations or
// to chat, and renders the reply.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pathakanu/myAssistant/internal/format"
	"github.com/pathakanu/myAssistant/internal/intent"
	"github.com/pathakanu/myAssistant/internal/locale"
	"github.com/pathakanu/myAssistant/internal/metrics"
	"github.com/pathakanu/myAssistant/internal/model"
	"github.com/pathakanu/myAssistant/internal/reminder"
	"github.com/pathakanu/myAssistant/internal/timeexpr"
)

// ErrAIUnavailable wraps any failure of the AI collaborator. The Result
// returned alongside it still carries a displayable apology.
var ErrAIUnavailable = errors.New("ai collaborator unavailable")

// Responder answers free-form chat messages.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// Notifier delivers a reminder that has become due.
type Notifier interface {
	Notify(ctx context.Context, r model.Reminder) error
}

// Options configures New. Store and Logger are required.
type Options struct {
	Store    reminder.Store
	Locale   locale.Locale
	Location *time.Location
	// AI handles chat when set; otherwise canned replies are used.
	AI       Responder
	Notifier Notifier
	Metrics  *metrics.Metrics
	Logger   *log.Logger
	Now      func() time.Time
	// Picker overrides the random choice for canned replies.
	Picker func(n int) int
	// CatchUp starts the first due-reminder window this far before boot.
	CatchUp time.Duration
}

// Result is the outcome of one processed message.
type Result struct {
	Intent   intent.Intent
	Reply    string
	Reminder *model.Reminder
}

// Assistant coordinates classification, reminder storage, chat and due-reminder delivery.
type Assistant struct {
	store      reminder.Store
	classifier *intent.Classifier
	resolver   *timeexpr.Resolver
	titles     *reminder.TitleExtractor
	formatter  *format.Formatter
	ai         Responder
	notifier   Notifier
	metrics    *metrics.Metrics
	location   *time.Location
	now        func() time.Time
	logger     *log.Logger

	cron      *cron.Cron
	sweepMu   sync.Mutex
	lastSweep time.Time
}

// New creates a fully configured Assistant.
func New(opts Options) *Assistant {
	loc := opts.Locale
	if loc.Name == "" {
		loc = locale.Italian
	}
	tz := opts.Location
	if tz == nil {
		tz = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	var fmtOpts []format.Option
	if opts.Picker != nil {
		fmtOpts = append(fmtOpts, format.WithPicker(opts.Picker))
	}

	resolver := timeexpr.New(loc)
	return &Assistant{
		store:      opts.Store,
		classifier: intent.New(loc),
		resolver:   resolver,
		titles:     reminder.NewTitleExtractor(loc, resolver),
		formatter:  format.New(loc, tz, fmtOpts...),
		ai:         opts.AI,
		notifier:   opts.Notifier,
		metrics:    opts.Metrics,
		location:   tz,
		now:        now,
		logger:     opts.Logger,
		lastSweep:  now().Add(-opts.CatchUp),
	}
}

// Formatter exposes the reply renderer, e.g. for fixed failure replies.
func (a *Assistant) Formatter() *format.Formatter {
	return a.formatter
}

// Process handles one message. Reminder lookups that miss are not errors;
// the Result carries the usage hint instead.
func (a *Assistant) Process(ctx context.Context, message string) (Result, error) {
	message = strings.TrimSpace(message)
	lower := strings.ToLower(message)

	kind := a.classifier.Classify(lower)
	a.metrics.ObserveIntent(string(kind))

	switch kind {
	case intent.CreateReminder:
		return a.createReminder(ctx, message)
	case intent.ListReminders:
		return a.listReminders(ctx)
	case intent.DeleteReminder:
		return a.deleteReminder(ctx, message)
	default:
		return a.chat(ctx, message)
	}
}

func (a *Assistant) createReminder(ctx context.Context, message string) (Result, error) {
	now := a.now().In(a.location)
	r := &model.Reminder{
		Title:       a.titles.Extract(message),
		ScheduledAt: a.resolver.Resolve(message, now),
		RawText:     message,
		CreatedAt:   now,
	}
	if err := a.store.Append(ctx, r); err != nil {
		return Result{Intent: intent.CreateReminder}, fmt.Errorf("create reminder: %w", err)
	}
	return Result{
		Intent:   intent.CreateReminder,
		Reply:    a.formatter.ReminderCreated(*r),
		Reminder: r,
	}, nil
}

func (a *Assistant) listReminders(ctx context.Context) (Result, error) {
	reminders, err := a.store.List(ctx)
	if err != nil {
		return Result{Intent: intent.ListReminders}, fmt.Errorf("list reminders: %w", err)
	}
	return Result{Intent: intent.ListReminders, Reply: a.formatter.ReminderList(reminders)}, nil
}

func (a *Assistant) deleteReminder(ctx context.Context, message string) (Result, error) {
	removed, err := a.store.RemoveAt(ctx, reminder.ParsePosition(message))
	switch {
	case errors.Is(err, reminder.ErrNotFound):
		return Result{Intent: intent.DeleteReminder, Reply: a.formatter.ReminderNotFound()}, nil
	case err != nil:
		return Result{Intent: intent.DeleteReminder}, fmt.Errorf("delete reminder: %w", err)
	}
	return Result{Intent: intent.DeleteReminder, Reply: a.formatter.ReminderDeleted(removed)}, nil
}

func (a *Assistant) chat(ctx context.Context, message string) (Result, error) {
	if a.ai == nil {
		return Result{Intent: intent.Chat, Reply: a.formatter.Chat(message)}, nil
	}
	reply, err := a.ai.Reply(ctx, message)
	if err != nil {
		a.metrics.ObserveAIFailure()
		return Result{Intent: intent.Chat, Reply: a.formatter.AIUnavailable()}, fmt.Errorf("%w: %w", ErrAIUnavailable, err)
	}
	return Result{Intent: intent.Chat, Reply: reply}, nil
}
