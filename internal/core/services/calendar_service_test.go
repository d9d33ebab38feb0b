package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgenda_MergesAndSortsByStart(t *testing.T) {
	mockEvents := new(MockEventRepository)
	mockServices := new(MockServiceRepository)
	svc := services.NewCalendarService(mockEvents, mockServices)
	ctx := context.Background()

	d1 := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, 9, 11, 9, 0, 0, 0, time.UTC)

	mockEvents.On("ListEvents", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Event{
		{EventID: 1, Title: "Festa", Start: d2, End: d2.Add(5 * time.Hour), Status: domain.EventConfirmed, SpaceName: "Salão"},
	}, nil).Once()
	mockServices.On("ListServiceTasks", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.ServiceTask{
		{ServiceTaskID: 7, ServiceTypeName: "Limpeza", Start: d1, Status: domain.TaskScheduled, SpaceName: "Salão"},
		{ServiceTaskID: 8, ServiceTypeName: "Jardinagem", Responsible: "João", Start: d3, Status: domain.TaskScheduled, SpaceName: "Chácara"},
	}, nil).Once()

	entries, err := svc.Agenda(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.AgendaTask, entries[0].Kind)
	assert.Equal(t, "Limpeza", entries[0].Title)
	assert.Equal(t, domain.AgendaEvent, entries[1].Kind)
	assert.Equal(t, "Jardinagem (João)", entries[2].Title)
}

func TestICSFeed_RendersEventsSkippingCancelled(t *testing.T) {
	mockEvents := new(MockEventRepository)
	mockServices := new(MockServiceRepository)
	svc := services.NewCalendarService(mockEvents, mockServices)
	ctx := context.Background()

	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	mockEvents.On("ListEvents", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Event{
		{EventID: 1, Title: "Festa de Aniversário", Start: start, End: start.Add(5 * time.Hour), Status: domain.EventConfirmed, SpaceName: "Salão de Festas"},
		{EventID: 2, Title: "Cancelado", Start: start, End: start.Add(time.Hour), Status: domain.EventCancelled},
	}, nil).Once()

	feed, err := svc.ICSFeed(ctx, nil, nil)
	require.NoError(t, err)

	text := string(feed)
	assert.True(t, strings.HasPrefix(text, "BEGIN:VCALENDAR"))
	assert.Contains(t, text, "SUMMARY:Festa de Aniversário")
	assert.Contains(t, text, "LOCATION:Salão de Festas")
	assert.Contains(t, text, "UID:event-1@gestor-espacos")
	assert.NotContains(t, text, "Cancelado")
}
