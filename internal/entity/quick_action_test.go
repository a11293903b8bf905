package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

func TestQuickAction_Properties(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 15, 30, 0, 0, time.UTC)

	props, err := entity.QuickActionMarkHotLead.Properties("", now)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"hs_lead_status": "OPEN", "lifecyclestage": "opportunity"}, props)

	props, err = entity.QuickActionIncreaseScore.Properties("", now)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"hubspot_owner_assigneddate": "2024-11-28T15:30:00Z"}, props)

	props, err = entity.QuickActionAddToList.Properties("", now)
	require.NoError(t, err)
	require.Nil(t, props)

	_, err = entity.QuickActionAssignOwner.Properties("", now)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	props, err = entity.QuickActionAssignOwner.Properties("777", now)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"hubspot_owner_id": "777"}, props)
}

func TestParseQuickAction(t *testing.T) {
	t.Parallel()

	a, err := entity.ParseQuickAction("mark_hot_lead")
	require.NoError(t, err)
	require.Equal(t, entity.QuickActionMarkHotLead, a)

	_, err = entity.ParseQuickAction("bogus_action")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestParseActivityType(t *testing.T) {
	t.Parallel()

	_, err := entity.ParseActivityType("DEAL_CREATED")
	require.NoError(t, err)

	_, err = entity.ParseActivityType("deal_created")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestParseTaskPriority(t *testing.T) {
	t.Parallel()

	p, err := entity.ParseTaskPriority("")
	require.NoError(t, err)
	require.Equal(t, entity.TaskPriorityMedium, p)

	p, err = entity.ParseTaskPriority("high")
	require.NoError(t, err)
	require.Equal(t, entity.TaskPriorityHigh, p)

	_, err = entity.ParseTaskPriority("URGENT")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
