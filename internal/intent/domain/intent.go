// Package domain provides the semantic intent model: a structured, serializable
// description of an action an agent plans to perform.
package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Intent describes a planned agent action. Action and domain are required and
// immutable after construction; target, priority and parameters are mutated
// only through the chainable builder methods, and the whole value freezes the
// first time it is serialized for transmission or audit.
//
// The builder methods never return errors directly so call chains stay fluent;
// the first invalid mutation is captured and surfaced by CanonicalJSON.
type Intent struct {
	id       string
	action   string
	domain   string
	target   string
	hasTgt   bool
	priority PriorityLevel
	params   map[string]string

	frozen bool
	err    error
}

// intentJSON fixes the canonical field order of the wire representation.
type intentJSON struct {
	ID       string            `json:"id"`
	Action   string            `json:"action"`
	Domain   string            `json:"domain"`
	Target   *string           `json:"target"`
	Priority priorityJSON      `json:"priority"`
	Params   map[string]string `json:"params"`
}

type priorityJSON struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// New creates an Intent with the required action and domain. Both must be
// non-empty. The intent id is a fresh UUIDv7, unique within the process.
func New(action, domain string) (*Intent, error) {
	if action == "" {
		return nil, ErrEmptyAction
	}
	if domain == "" {
		return nil, ErrEmptyDomain
	}

	return &Intent{
		id:       uuid.Must(uuid.NewV7()).String(),
		action:   action,
		domain:   domain,
		priority: PriorityNormal,
		params:   make(map[string]string),
	}, nil
}

// ID returns the unique intent identifier.
func (i *Intent) ID() string { return i.id }

// Action returns the action string.
func (i *Intent) Action() string { return i.action }

// Domain returns the domain string.
func (i *Intent) Domain() string { return i.domain }

// Priority returns the current priority level.
func (i *Intent) Priority() PriorityLevel { return i.priority }

// Target returns the target and whether one has been set.
func (i *Intent) Target() (string, bool) { return i.target, i.hasTgt }

// Param returns the value for a parameter key and whether it is present.
func (i *Intent) Param(key string) (string, bool) {
	v, ok := i.params[key]
	return v, ok
}

// SetTarget replaces the target field. Chainable and idempotent.
func (i *Intent) SetTarget(target string) *Intent {
	if i.mutable() {
		i.target = target
		i.hasTgt = true
	}
	return i
}

// SetPriority replaces the priority field. Chainable. A value outside
// {0,1,2,3} is captured as a deferred ErrInvalidPriority.
func (i *Intent) SetPriority(priority PriorityLevel) *Intent {
	if !i.mutable() {
		return i
	}
	if !priority.Valid() {
		i.err = fmt.Errorf("%w: %d", ErrInvalidPriority, priority)
		return i
	}
	i.priority = priority
	return i
}

// AddParam inserts or overwrites a string parameter. Chainable. An empty key
// is captured as a deferred ErrEmptyParamKey.
func (i *Intent) AddParam(key, value string) *Intent {
	if !i.mutable() {
		return i
	}
	if key == "" {
		i.err = ErrEmptyParamKey
		return i
	}
	i.params[key] = value
	return i
}

// mutable records a deferred error when a frozen intent is mutated.
func (i *Intent) mutable() bool {
	if i.err != nil {
		return false
	}
	if i.frozen {
		i.err = ErrIntentFrozen
		return false
	}
	return true
}

// CanonicalJSON serializes the intent to its canonical JSON representation:
// {"id","action","domain","target","priority":{"value","label"},"params"} with
// target null when unset and params keys in sorted order. Any deferred builder
// error is returned here. Serialization freezes the intent; repeated calls on
// the same value are byte-identical.
func (i *Intent) CanonicalJSON() (string, error) {
	if i.err != nil {
		return "", i.err
	}

	var target *string
	if i.hasTgt {
		target = &i.target
	}

	data, err := json.Marshal(intentJSON{
		ID:     i.id,
		Action: i.action,
		Domain: i.domain,
		Target: target,
		Priority: priorityJSON{
			Value: int(i.priority),
			Label: i.priority.Label(),
		},
		Params: i.params,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal intent: %w", err)
	}

	i.frozen = true
	return string(data), nil
}
