package orggraph

import (
	"time"

	"github.com/google/uuid"
)

// Input types mirror the remote schema's mutation inputs. They are passed
// through as the $input variable; field-level validation beyond variable
// shape is the remote's job.

// RAValidityInput is the validity window an input record takes effect in.
// A nil To means open-ended.
type RAValidityInput struct {
	From time.Time  `json:"from"`
	To   *time.Time `json:"to,omitempty"`
}

type AddressCreateInput struct {
	UUID        *uuid.UUID      `json:"uuid,omitempty"`
	OrgUnit     uuid.UUID       `json:"org_unit"`
	Value       string          `json:"value"`
	AddressType uuid.UUID       `json:"address_type"`
	UserKey     *string         `json:"user_key,omitempty"`
	Validity    RAValidityInput `json:"validity"`
}

type AddressUpdateInput struct {
	UUID        uuid.UUID       `json:"uuid"`
	Value       string          `json:"value"`
	AddressType uuid.UUID       `json:"address_type"`
	Validity    RAValidityInput `json:"validity"`
}

type OrganisationUnitCreateInput struct {
	UUID         *uuid.UUID      `json:"uuid,omitempty"`
	Name         string          `json:"name"`
	UserKey      string          `json:"user_key"`
	Parent       *uuid.UUID      `json:"parent,omitempty"`
	OrgUnitType  *uuid.UUID      `json:"org_unit_type,omitempty"`
	OrgUnitLevel *uuid.UUID      `json:"org_unit_level,omitempty"`
	Validity     RAValidityInput `json:"validity"`
}

type OrganisationUnitUpdateInput struct {
	UUID         uuid.UUID       `json:"uuid"`
	Name         *string         `json:"name,omitempty"`
	UserKey      *string         `json:"user_key,omitempty"`
	Parent       *uuid.UUID      `json:"parent,omitempty"`
	OrgUnitLevel *uuid.UUID      `json:"org_unit_level,omitempty"`
	Validity     RAValidityInput `json:"validity"`
}

// OrganisationUnitTerminateInput ends a unit's validity. To is the last
// date the unit is effective.
type OrganisationUnitTerminateInput struct {
	UUID uuid.UUID  `json:"uuid"`
	From *time.Time `json:"from,omitempty"`
	To   time.Time  `json:"to"`
}

type ClassCreateInput struct {
	UUID      *uuid.UUID      `json:"uuid,omitempty"`
	FacetUUID uuid.UUID       `json:"facet_uuid"`
	Name      string          `json:"name"`
	UserKey   string          `json:"user_key"`
	Scope     *string         `json:"scope,omitempty"`
	Validity  RAValidityInput `json:"validity"`
}

type ClassUpdateInput struct {
	UUID      uuid.UUID       `json:"uuid"`
	FacetUUID uuid.UUID       `json:"facet_uuid"`
	Name      string          `json:"name"`
	UserKey   string          `json:"user_key"`
	Scope     *string         `json:"scope,omitempty"`
	Validity  RAValidityInput `json:"validity"`
}

type EmployeeCreateInput struct {
	UUID      *uuid.UUID `json:"uuid,omitempty"`
	GivenName string     `json:"given_name"`
	Surname   string     `json:"surname"`
	CPRNumber *string    `json:"cpr_number,omitempty"`
}

type EngagementCreateInput struct {
	UUID           *uuid.UUID      `json:"uuid,omitempty"`
	Person         uuid.UUID       `json:"person"`
	OrgUnit        uuid.UUID       `json:"org_unit"`
	EngagementType uuid.UUID       `json:"engagement_type"`
	JobFunction    uuid.UUID       `json:"job_function"`
	UserKey        *string         `json:"user_key,omitempty"`
	Validity       RAValidityInput `json:"validity"`
}

type EngagementUpdateInput struct {
	UUID           uuid.UUID       `json:"uuid"`
	Person         *uuid.UUID      `json:"person,omitempty"`
	OrgUnit        *uuid.UUID      `json:"org_unit,omitempty"`
	EngagementType *uuid.UUID      `json:"engagement_type,omitempty"`
	JobFunction    *uuid.UUID      `json:"job_function,omitempty"`
	UserKey        *string         `json:"user_key,omitempty"`
	Extension1     *string         `json:"extension_1,omitempty"`
	Validity       RAValidityInput `json:"validity"`
}
