package orggraph

// The operation documents below form the client's entire wire surface
// against the organization-management API. Each constant holds exactly one
// named operation; the registry parses them at startup and refuses to boot
// on a malformed document. Selection sets are fixed: response types in
// responses.go mirror them field for field.

const getOrganizationDocument = `
query GetOrganization {
  org {
    uuid
  }
}
`

const addressTypesDocument = `
query AddressTypes {
  facets(filter: { user_keys: "org_unit_address_type" }) {
    objects {
      current {
        user_key
        uuid
        classes {
          uuid
          user_key
          name
        }
      }
    }
  }
}
`

const createAddressDocument = `
mutation CreateAddress($input: AddressCreateInput!) {
  address_create(input: $input) {
    uuid
    current {
      validity {
        from
        to
      }
      uuid
      name
      address_type {
        user_key
      }
    }
  }
}
`

const updateAddressDocument = `
mutation UpdateAddress($input: AddressUpdateInput!) {
  address_update(input: $input) {
    uuid
    current {
      validity {
        from
        to
      }
      uuid
      name
      address_type {
        user_key
      }
    }
  }
}
`

const getAddressesDocument = `
query GetAddresses($org_unit: UUID!, $from_date: DateTime, $to_date: DateTime) {
  addresses(
    filter: {
      org_unit: { uuids: [$org_unit] }
      from_date: $from_date
      to_date: $to_date
    }
  ) {
    objects {
      validities {
        validity {
          from
          to
        }
        name
        address_type {
          user_key
        }
      }
    }
  }
}
`

const getFacetClassDocument = `
query GetFacetClass($facet_user_key: String!, $class_user_key: String!) {
  classes(
    filter: {
      facet: { user_keys: [$facet_user_key] }
      user_keys: [$class_user_key]
    }
  ) {
    objects {
      current {
        uuid
        user_key
        name
        scope
      }
    }
  }
}
`

const getFacetUuidDocument = `
query GetFacetUuid($user_key: String!) {
  facets(filter: { user_keys: [$user_key] }) {
    objects {
      uuid
    }
  }
}
`

const getOrgUnitTimelineDocument = `
query GetOrgUnitTimeline($unit_uuid: UUID!, $from_date: DateTime, $to_date: DateTime) {
  org_units(
    filter: { uuids: [$unit_uuid], from_date: $from_date, to_date: $to_date }
  ) {
    objects {
      validities {
        validity {
          from
          to
        }
        uuid
        name
        user_key
        parent {
          uuid
        }
      }
    }
  }
}
`

const createOrgUnitDocument = `
mutation CreateOrgUnit($input: OrganisationUnitCreateInput!) {
  org_unit_create(input: $input) {
    uuid
  }
}
`

const updateOrgUnitDocument = `
mutation UpdateOrgUnit($input: OrganisationUnitUpdateInput!) {
  org_unit_update(input: $input) {
    uuid
  }
}
`

const terminateOrgUnitDocument = `
mutation TerminateOrgUnit($input: OrganisationUnitTerminateInput!) {
  org_unit_terminate(input: $input) {
    uuid
  }
}
`

const createEngagementDocument = `
mutation CreateEngagement($input: EngagementCreateInput!) {
  engagement_create(input: $input) {
    uuid
  }
}
`

const createClassDocument = `
mutation CreateClass($input: ClassCreateInput!) {
  class_create(input: $input) {
    uuid
  }
}
`

const updateClassDocument = `
mutation UpdateClass($input: ClassUpdateInput!) {
  class_update(input: $input) {
    uuid
  }
}
`

const updateEngagementDocument = `
mutation UpdateEngagement($input: EngagementUpdateInput!) {
  engagement_update(input: $input) {
    uuid
  }
}
`

const getRelatedUnitsDocument = `
query GetRelatedUnits($unit_uuid: UUID!, $from_date: DateTime, $to_date: DateTime) {
  related_units(
    filter: { org_units: [$unit_uuid], from_date: $from_date, to_date: $to_date }
  ) {
    objects {
      validities {
        uuid
        validity {
          from
          to
        }
        org_units {
          uuid
        }
      }
    }
  }
}
`

// Fixture operations, exposed through TestingClient only. The remote schema
// names them with the same _Testing_ prefix.

const testingCreateEmployeeDocument = `
mutation _Testing_CreateEmployee($input: EmployeeCreateInput!) {
  employee_create(input: $input) {
    uuid
  }
}
`

const testingCreateOrgUnitDocument = `
mutation _Testing_CreateOrgUnit($input: OrganisationUnitCreateInput!) {
  org_unit_create(input: $input) {
    uuid
  }
}
`

const testingCreateEngagementDocument = `
mutation _Testing_CreateEngagement($input: EngagementCreateInput!) {
  engagement_create(input: $input) {
    uuid
  }
}
`

const testingGetOrgUnitDocument = `
query _Testing_GetOrgUnit($unit_uuid: UUID!) {
  org_units(filter: { uuids: [$unit_uuid] }) {
    objects {
      current {
        uuid
        name
        user_key
        validity {
          from
          to
        }
      }
    }
  }
}
`

const testingGetOrgUnitAddressDocument = `
query _Testing_GetOrgUnitAddress($org_unit: UUID!, $addr_type: UUID!) {
  org_units(filter: { uuids: [$org_unit] }) {
    objects {
      current {
        addresses(filter: { address_type: { uuids: [$addr_type] } }) {
          value
          user_key
        }
      }
    }
  }
}
`
