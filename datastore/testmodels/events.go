/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package testmodels

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/polyserde"
	"github.com/suparena/polyserde/registry"
)

// Event is the polymorphic interface used by datastore tests. Concrete
// event types share one table and one registry.
type Event interface {
	polyserde.Tagged
}

type PlayerRegistered struct {
	PlayerID  string           `json:"playerId" dynamodbav:"playerId"`
	Name      string           `json:"name" dynamodbav:"name"`
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
}

func (*PlayerRegistered) TypeTag() string { return "PlayerRegistered" }

type MatchScored struct {
	MatchID  string           `json:"matchId" dynamodbav:"matchId"`
	Winner   string           `json:"winner" dynamodbav:"winner"`
	Points   int32            `json:"points" dynamodbav:"points"`
	PlayedAt *strfmt.DateTime `json:"playedAt,omitempty" dynamodbav:"playedAt,omitempty"`
}

func (*MatchScored) TypeTag() string { return "MatchScored" }

// Events holds the registrations for the test event types.
var Events = registry.New[Event]()

func init() {
	registry.MustRegister(Events, "PlayerRegistered", registry.DecodeAs[Event, PlayerRegistered]())
	registry.MustRegister(Events, "MatchScored", registry.DecodeAs[Event, MatchScored]())
}
