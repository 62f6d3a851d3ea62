package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldku_backend/internals/constants"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{constants.TicketOpen, constants.TicketInProgress, true},
		{constants.TicketOpen, constants.TicketClosed, true},
		{constants.TicketOpen, constants.TicketResolved, false},
		{constants.TicketInProgress, constants.TicketResolved, true},
		{constants.TicketInProgress, constants.TicketOpen, true},
		{constants.TicketInProgress, constants.TicketClosed, false},
		{constants.TicketResolved, constants.TicketClosed, true},
		{constants.TicketResolved, constants.TicketInProgress, true},
		{constants.TicketClosed, constants.TicketOpen, false},
		{constants.TicketClosed, constants.TicketInProgress, false},
		{"UNKNOWN", constants.TicketOpen, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
