package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/emersion/go-ical"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
)

type CalendarService struct {
	BaseService
	eventRepo   portsrepo.EventRepository
	serviceRepo portsrepo.ServiceRepository
}

// NewCalendarService creates the merged agenda and iCalendar feed service.
func NewCalendarService(eventRepo portsrepo.EventRepository, serviceRepo portsrepo.ServiceRepository) *CalendarService {
	return &CalendarService{eventRepo: eventRepo, serviceRepo: serviceRepo}
}

var _ portssvc.CalendarService = (*CalendarService)(nil)

// Agenda merges events and service tasks into one chronological list.
func (s *CalendarService) Agenda(ctx context.Context, start, end *time.Time) ([]domain.AgendaEntry, error) {
	events, err := s.eventRepo.ListEvents(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to list events for agenda")
		return nil, fmt.Errorf("failed to list events for agenda: %w", err)
	}
	tasks, err := s.serviceRepo.ListServiceTasks(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to list service tasks for agenda")
		return nil, fmt.Errorf("failed to list service tasks for agenda: %w", err)
	}

	entries := make([]domain.AgendaEntry, 0, len(events)+len(tasks))
	for _, e := range events {
		eventEnd := e.End
		entries = append(entries, domain.AgendaEntry{
			Kind:      domain.AgendaEvent,
			ID:        e.EventID,
			Title:     e.Title,
			Start:     e.Start,
			End:       &eventEnd,
			SpaceName: e.SpaceName,
			Status:    string(e.Status),
		})
	}
	for _, t := range tasks {
		title := t.ServiceTypeName
		if t.Responsible != "" {
			title = fmt.Sprintf("%s (%s)", t.ServiceTypeName, t.Responsible)
		}
		entries = append(entries, domain.AgendaEntry{
			Kind:      domain.AgendaTask,
			ID:        t.ServiceTaskID,
			Title:     title,
			Start:     t.Start,
			End:       t.End,
			SpaceName: t.SpaceName,
			Status:    string(t.Status),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})
	return entries, nil
}

// ICSFeed renders the events in the range as an iCalendar document for
// subscription by external calendar clients.
func (s *CalendarService) ICSFeed(ctx context.Context, start, end *time.Time) ([]byte, error) {
	events, err := s.eventRepo.ListEvents(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to list events for ics feed")
		return nil, fmt.Errorf("failed to list events for ics feed: %w", err)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//gestor_espacos_app//calendar//PT")

	for _, e := range events {
		if e.Status == domain.EventCancelled {
			continue
		}
		vevent := ical.NewEvent()
		vevent.Props.SetText(ical.PropUID, fmt.Sprintf("event-%d@gestor-espacos", e.EventID))
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, e.LastUpdatedAt.UTC())
		vevent.Props.SetDateTime(ical.PropDateTimeStart, e.Start.UTC())
		vevent.Props.SetDateTime(ical.PropDateTimeEnd, e.End.UTC())
		vevent.Props.SetText(ical.PropSummary, e.Title)
		if e.SpaceName != "" {
			vevent.Props.SetText(ical.PropLocation, e.SpaceName)
		}
		if e.Notes != "" {
			vevent.Props.SetText(ical.PropDescription, e.Notes)
		}
		cal.Children = append(cal.Children, vevent.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		s.LogError(ctx, err, "failed to encode ics feed")
		return nil, fmt.Errorf("failed to encode ics feed: %w", err)
	}
	return buf.Bytes(), nil
}
