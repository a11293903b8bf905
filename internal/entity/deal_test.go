package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

func TestAmount_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(entity.Deal{ID: "d1", Name: "Q4", Amount: entity.ParseAmount("15000.50")})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"d1","name":"Q4","amount":15000.5,"stage":""}`, string(b))

	var d entity.NewDeal
	require.NoError(t, json.Unmarshal([]byte(`{"contactId":"1","dealName":"x","amount":1500.25}`), &d))
	require.Equal(t, "1500.25", d.Amount.String())

	require.NoError(t, json.Unmarshal([]byte(`{"amount":"42"}`), &d))
	require.Equal(t, "42", d.Amount.String())

	require.True(t, entity.ParseAmount("not a number").IsZero())
}
