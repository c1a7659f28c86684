package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOrder_DefaultsToOpen(t *testing.T) {
	order, err := NewOrder("o1", "c1", nil, "", "")
	require.NoError(t, err)
	require.Equal(t, StatusOpen, order.Status)
}

func TestNewOrder_RequiresClient(t *testing.T) {
	_, err := NewOrder("o1", " ", nil, "", "")
	require.ErrorIs(t, err, ErrMissingClient)
}

func TestNewOrder_RejectsBadLineItems(t *testing.T) {
	_, err := NewOrder("o1", "c1", []LineItem{{PartID: "p1", Quantity: 0}}, "", "")
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewOrder("o1", "c1", []LineItem{{PartID: "", Quantity: 2}}, "", "")
	require.ErrorIs(t, err, ErrMissingPart)
}

func TestUpdateStatus_MembershipOnly(t *testing.T) {
	order, err := NewOrder("o1", "c1", nil, "", StatusCompleted)
	require.NoError(t, err)

	// No transition graph: completed may be reopened directly.
	require.NoError(t, order.UpdateStatus(StatusOpen))
	require.Equal(t, StatusOpen, order.Status)

	require.ErrorIs(t, order.UpdateStatus("cancelled"), ErrInvalidStatus)
	require.Equal(t, StatusOpen, order.Status)
}

func TestReplaceLineItems_Wholesale(t *testing.T) {
	order, err := NewOrder("o1", "c1", []LineItem{{PartID: "p1", Quantity: 1}}, "", "")
	require.NoError(t, err)

	require.NoError(t, order.ReplaceLineItems([]LineItem{{PartID: "p2", Quantity: 3}}))
	require.Len(t, order.LineItems, 1)
	require.Equal(t, "p2", order.LineItems[0].PartID)

	// Empty sequences are allowed.
	require.NoError(t, order.ReplaceLineItems(nil))
	require.Empty(t, order.LineItems)
}

func TestPartIDs_Distinct(t *testing.T) {
	order, err := NewOrder("o1", "c1", []LineItem{
		{PartID: "p1", Quantity: 1},
		{PartID: "p1", Quantity: 2},
		{PartID: "p2", Quantity: 1},
	}, "", "")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"p1", "p2"}, order.PartIDs())
}
