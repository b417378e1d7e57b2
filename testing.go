package orggraph

import (
	"context"

	"github.com/google/uuid"
)

// TestingClient exposes the _Testing_* fixture operations the remote ships
// for integration suites. They share the production transport and error
// taxonomy but are kept off the Client's own method set so production code
// does not pick them up by accident.
type TestingClient struct {
	c *Client
}

// Testing returns the fixture view of the client.
func (c *Client) Testing() TestingClient {
	return TestingClient{c: c}
}

// CreateEmployee creates an employee fixture and returns its uuid.
func (t TestingClient) CreateEmployee(
	ctx context.Context,
	input EmployeeCreateInput,
) (uuid.UUID, error) {
	var data struct {
		EmployeeCreate CreatedRef `json:"employee_create"`
	}
	err := t.c.Exec(ctx, "_Testing_CreateEmployee", map[string]any{"input": input}, &data)
	return data.EmployeeCreate.UUID, err
}

// CreateOrgUnit creates an org-unit fixture and returns its uuid.
func (t TestingClient) CreateOrgUnit(
	ctx context.Context,
	input OrganisationUnitCreateInput,
) (uuid.UUID, error) {
	var data struct {
		OrgUnitCreate OrgUnitRef `json:"org_unit_create"`
	}
	err := t.c.Exec(ctx, "_Testing_CreateOrgUnit", map[string]any{"input": input}, &data)
	return data.OrgUnitCreate.UUID, err
}

// CreateEngagement creates an engagement fixture and returns its uuid.
func (t TestingClient) CreateEngagement(
	ctx context.Context,
	input EngagementCreateInput,
) (uuid.UUID, error) {
	var data struct {
		EngagementCreate CreatedRef `json:"engagement_create"`
	}
	err := t.c.Exec(ctx, "_Testing_CreateEngagement", map[string]any{"input": input}, &data)
	return data.EngagementCreate.UUID, err
}

// GetOrgUnit fetches the current state of one org unit.
func (t TestingClient) GetOrgUnit(
	ctx context.Context,
	unitUUID uuid.UUID,
) (*OrgUnitsCurrent, error) {
	var data struct {
		OrgUnits OrgUnitsCurrent `json:"org_units"`
	}
	err := t.c.Exec(ctx, "_Testing_GetOrgUnit", map[string]any{"unit_uuid": unitUUID}, &data)
	return &data.OrgUnits, err
}

// GetOrgUnitAddress fetches the current addresses of one org unit filtered
// by address type.
func (t TestingClient) GetOrgUnitAddress(
	ctx context.Context,
	orgUnit, addrType uuid.UUID,
) (*OrgUnitAddresses, error) {
	var data struct {
		OrgUnits OrgUnitAddresses `json:"org_units"`
	}
	vars := map[string]any{"org_unit": orgUnit, "addr_type": addrType}
	err := t.c.Exec(ctx, "_Testing_GetOrgUnitAddress", vars, &data)
	return &data.OrgUnits, err
}
