package orggraph

import (
	"time"

	"github.com/google/uuid"
)

// Response types mirror the selection sets in documents.go. Pointer fields
// are nullable in the schema; everything else is required and its absence
// from a payload is a decode failure.

// Validity is the {from, to} window a record is effective in. A nil To
// means the record is open-ended.
type Validity struct {
	From time.Time  `json:"from"`
	To   *time.Time `json:"to"`
}

// Organization is the root organization, the only field GetOrganization
// selects.
type Organization struct {
	UUID uuid.UUID `json:"uuid"`
}

// FacetClass is one class within a facet, e.g. a single address type.
type FacetClass struct {
	UUID    uuid.UUID `json:"uuid"`
	UserKey string    `json:"user_key"`
	Name    string    `json:"name"`
}

// AddressTypesFacets is the facet page returned by AddressTypes.
type AddressTypesFacets struct {
	Objects []AddressTypesFacetObject `json:"objects"`
}

type AddressTypesFacetObject struct {
	Current *AddressTypesFacet `json:"current"`
}

type AddressTypesFacet struct {
	UserKey string       `json:"user_key"`
	UUID    uuid.UUID    `json:"uuid"`
	Classes []FacetClass `json:"classes"`
}

// CreatedAddress is the result of CreateAddress and UpdateAddress. Current
// is null when the written validity window does not cover the present.
type CreatedAddress struct {
	UUID    uuid.UUID       `json:"uuid"`
	Current *AddressCurrent `json:"current"`
}

type AddressCurrent struct {
	Validity    Validity           `json:"validity"`
	UUID        uuid.UUID          `json:"uuid"`
	Name        *string            `json:"name"`
	AddressType AddressTypeUserKey `json:"address_type"`
}

type AddressTypeUserKey struct {
	UserKey string `json:"user_key"`
}

// AddressesTimeline is the address page returned by GetAddresses.
type AddressesTimeline struct {
	Objects []AddressTimelineObject `json:"objects"`
}

type AddressTimelineObject struct {
	Validities []AddressValidity `json:"validities"`
}

type AddressValidity struct {
	Validity    Validity           `json:"validity"`
	Name        *string            `json:"name"`
	AddressType AddressTypeUserKey `json:"address_type"`
}

// ClassesPage is returned by GetFacetClass. An unknown facet or class
// user_key yields an empty Objects slice, not an error.
type ClassesPage struct {
	Objects []ClassObject `json:"objects"`
}

type ClassObject struct {
	Current *Class `json:"current"`
}

type Class struct {
	UUID    uuid.UUID `json:"uuid"`
	UserKey string    `json:"user_key"`
	Name    string    `json:"name"`
	Scope   *string   `json:"scope"`
}

// FacetsPage is returned by GetFacetUuid.
type FacetsPage struct {
	Objects []FacetRef `json:"objects"`
}

type FacetRef struct {
	UUID uuid.UUID `json:"uuid"`
}

// OrgUnitsTimeline is the unit page returned by GetOrgUnitTimeline. A
// unit_uuid unknown to the remote yields an empty Objects slice.
type OrgUnitsTimeline struct {
	Objects []OrgUnitTimelineObject `json:"objects"`
}

type OrgUnitTimelineObject struct {
	Validities []OrgUnitValidity `json:"validities"`
}

type OrgUnitValidity struct {
	Validity Validity    `json:"validity"`
	UUID     uuid.UUID   `json:"uuid"`
	Name     string      `json:"name"`
	UserKey  string      `json:"user_key"`
	Parent   *OrgUnitRef `json:"parent"`
}

// OrgUnitRef identifies an org unit; mutations return nothing more.
type OrgUnitRef struct {
	UUID uuid.UUID `json:"uuid"`
}

// CreatedRef identifies a freshly written record of any kind.
type CreatedRef struct {
	UUID uuid.UUID `json:"uuid"`
}

// RelatedUnitsPage is returned by GetRelatedUnits. Each relation ties two
// or more org units together over a validity window.
type RelatedUnitsPage struct {
	Objects []RelatedUnitObject `json:"objects"`
}

type RelatedUnitObject struct {
	Validities []RelatedUnitValidity `json:"validities"`
}

type RelatedUnitValidity struct {
	UUID     uuid.UUID    `json:"uuid"`
	Validity Validity     `json:"validity"`
	OrgUnits []OrgUnitRef `json:"org_units"`
}

// OrgUnitsCurrent is returned by the _Testing_GetOrgUnit fixture.
type OrgUnitsCurrent struct {
	Objects []OrgUnitCurrentObject `json:"objects"`
}

type OrgUnitCurrentObject struct {
	Current *OrgUnitCurrent `json:"current"`
}

type OrgUnitCurrent struct {
	UUID     uuid.UUID `json:"uuid"`
	Name     string    `json:"name"`
	UserKey  string    `json:"user_key"`
	Validity Validity  `json:"validity"`
}

// OrgUnitAddresses is returned by the _Testing_GetOrgUnitAddress fixture.
type OrgUnitAddresses struct {
	Objects []OrgUnitAddressObject `json:"objects"`
}

type OrgUnitAddressObject struct {
	Current *OrgUnitAddressCurrent `json:"current"`
}

type OrgUnitAddressCurrent struct {
	Addresses []OrgUnitAddressValue `json:"addresses"`
}

type OrgUnitAddressValue struct {
	Value   string `json:"value"`
	UserKey string `json:"user_key"`
}
