package orggraph

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Typed call surface, one method per production operation. Every method is
// a single stateless request/response exchange; on partial success the
// returned value carries whatever data the remote produced alongside a
// non-nil error.

// GetOrganization returns the root organization.
func (c *Client) GetOrganization(ctx context.Context) (*Organization, error) {
	var data struct {
		Org Organization `json:"org"`
	}
	err := c.Exec(ctx, "GetOrganization", nil, &data)
	return &data.Org, err
}

// AddressTypes returns the org-unit address-type facet with its classes.
func (c *Client) AddressTypes(ctx context.Context) (*AddressTypesFacets, error) {
	var data struct {
		Facets AddressTypesFacets `json:"facets"`
	}
	err := c.Exec(ctx, "AddressTypes", nil, &data)
	return &data.Facets, err
}

// CreateAddress creates an address on an org unit.
func (c *Client) CreateAddress(
	ctx context.Context,
	input AddressCreateInput,
) (*CreatedAddress, error) {
	var data struct {
		AddressCreate CreatedAddress `json:"address_create"`
	}
	err := c.Exec(ctx, "CreateAddress", map[string]any{"input": input}, &data)
	return &data.AddressCreate, err
}

// UpdateAddress writes a new validity for an existing address.
func (c *Client) UpdateAddress(
	ctx context.Context,
	input AddressUpdateInput,
) (*CreatedAddress, error) {
	var data struct {
		AddressUpdate CreatedAddress `json:"address_update"`
	}
	err := c.Exec(ctx, "UpdateAddress", map[string]any{"input": input}, &data)
	return &data.AddressUpdate, err
}

// GetAddresses returns the address timeline of one org unit, optionally
// restricted to a date range.
func (c *Client) GetAddresses(
	ctx context.Context,
	orgUnit uuid.UUID,
	fromDate, toDate *time.Time,
) (*AddressesTimeline, error) {
	vars := map[string]any{"org_unit": orgUnit}
	if fromDate != nil {
		vars["from_date"] = *fromDate
	}
	if toDate != nil {
		vars["to_date"] = *toDate
	}
	var data struct {
		Addresses AddressesTimeline `json:"addresses"`
	}
	err := c.Exec(ctx, "GetAddresses", vars, &data)
	return &data.Addresses, err
}

// GetFacetClass looks up one class by facet and class user_key. An unknown
// key pair yields an empty page, not an error.
func (c *Client) GetFacetClass(
	ctx context.Context,
	facetUserKey, classUserKey string,
) (*ClassesPage, error) {
	vars := map[string]any{
		"facet_user_key": facetUserKey,
		"class_user_key": classUserKey,
	}
	var data struct {
		Classes ClassesPage `json:"classes"`
	}
	err := c.Exec(ctx, "GetFacetClass", vars, &data)
	return &data.Classes, err
}

// GetFacetUuid looks up facets by user_key.
func (c *Client) GetFacetUuid(
	ctx context.Context,
	userKey string,
) (*FacetsPage, error) {
	var data struct {
		Facets FacetsPage `json:"facets"`
	}
	err := c.Exec(ctx, "GetFacetUuid", map[string]any{"user_key": userKey}, &data)
	return &data.Facets, err
}

// GetOrgUnitTimeline returns every validity of one org unit, optionally
// restricted to a date range. An unknown unit yields an empty page.
func (c *Client) GetOrgUnitTimeline(
	ctx context.Context,
	unitUUID uuid.UUID,
	fromDate, toDate *time.Time,
) (*OrgUnitsTimeline, error) {
	vars := map[string]any{"unit_uuid": unitUUID}
	if fromDate != nil {
		vars["from_date"] = *fromDate
	}
	if toDate != nil {
		vars["to_date"] = *toDate
	}
	var data struct {
		OrgUnits OrgUnitsTimeline `json:"org_units"`
	}
	err := c.Exec(ctx, "GetOrgUnitTimeline", vars, &data)
	return &data.OrgUnits, err
}

// CreateOrgUnit creates an org unit and returns its uuid.
func (c *Client) CreateOrgUnit(
	ctx context.Context,
	input OrganisationUnitCreateInput,
) (uuid.UUID, error) {
	var data struct {
		OrgUnitCreate OrgUnitRef `json:"org_unit_create"`
	}
	err := c.Exec(ctx, "CreateOrgUnit", map[string]any{"input": input}, &data)
	return data.OrgUnitCreate.UUID, err
}

// UpdateOrgUnit writes a new validity for an existing org unit.
func (c *Client) UpdateOrgUnit(
	ctx context.Context,
	input OrganisationUnitUpdateInput,
) (uuid.UUID, error) {
	var data struct {
		OrgUnitUpdate OrgUnitRef `json:"org_unit_update"`
	}
	err := c.Exec(ctx, "UpdateOrgUnit", map[string]any{"input": input}, &data)
	return data.OrgUnitUpdate.UUID, err
}

// TerminateOrgUnit ends an org unit's validity.
func (c *Client) TerminateOrgUnit(
	ctx context.Context,
	input OrganisationUnitTerminateInput,
) (uuid.UUID, error) {
	var data struct {
		OrgUnitTerminate OrgUnitRef `json:"org_unit_terminate"`
	}
	err := c.Exec(ctx, "TerminateOrgUnit", map[string]any{"input": input}, &data)
	return data.OrgUnitTerminate.UUID, err
}

// CreateEngagement creates an engagement between a person and an org unit.
func (c *Client) CreateEngagement(
	ctx context.Context,
	input EngagementCreateInput,
) (uuid.UUID, error) {
	var data struct {
		EngagementCreate CreatedRef `json:"engagement_create"`
	}
	err := c.Exec(ctx, "CreateEngagement", map[string]any{"input": input}, &data)
	return data.EngagementCreate.UUID, err
}

// UpdateEngagement writes a new validity for an existing engagement.
func (c *Client) UpdateEngagement(
	ctx context.Context,
	input EngagementUpdateInput,
) (uuid.UUID, error) {
	var data struct {
		EngagementUpdate CreatedRef `json:"engagement_update"`
	}
	err := c.Exec(ctx, "UpdateEngagement", map[string]any{"input": input}, &data)
	return data.EngagementUpdate.UUID, err
}

// CreateClass creates a class within a facet and returns its uuid.
func (c *Client) CreateClass(
	ctx context.Context,
	input ClassCreateInput,
) (uuid.UUID, error) {
	var data struct {
		ClassCreate CreatedRef `json:"class_create"`
	}
	err := c.Exec(ctx, "CreateClass", map[string]any{"input": input}, &data)
	return data.ClassCreate.UUID, err
}

// UpdateClass writes a new validity for an existing class.
func (c *Client) UpdateClass(
	ctx context.Context,
	input ClassUpdateInput,
) (uuid.UUID, error) {
	var data struct {
		ClassUpdate CreatedRef `json:"class_update"`
	}
	err := c.Exec(ctx, "UpdateClass", map[string]any{"input": input}, &data)
	return data.ClassUpdate.UUID, err
}

// GetRelatedUnits returns the unit relations one org unit participates in,
// optionally restricted to a date range. An unknown unit yields an empty
// page.
func (c *Client) GetRelatedUnits(
	ctx context.Context,
	unitUUID uuid.UUID,
	fromDate, toDate *time.Time,
) (*RelatedUnitsPage, error) {
	vars := map[string]any{"unit_uuid": unitUUID}
	if fromDate != nil {
		vars["from_date"] = *fromDate
	}
	if toDate != nil {
		vars["to_date"] = *toDate
	}
	var data struct {
		RelatedUnits RelatedUnitsPage `json:"related_units"`
	}
	err := c.Exec(ctx, "GetRelatedUnits", vars, &data)
	return &data.RelatedUnits, err
}
