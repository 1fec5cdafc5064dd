// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "pending_action", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "done", "cancelled", "expired"}, Default: "pending"},
		{Name: "user_response", Type: field.TypeJSON, Nullable: true},
		{Name: "execution_result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[1]},
			},
			{
				Name:    "agentsession_status",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[3]},
			},
			{
				Name:    "agentsession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[8]},
			},
			{
				Name:    "agentsession_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[3], AgentSessionsColumns[8]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "action", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeInt},
		{Name: "before", Type: field.TypeJSON, Nullable: true},
		{Name: "after", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[7]},
			},
		},
	}
	// BookingsColumns holds the columns for the "bookings" table.
	BookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "passenger_name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"CONFIRMED", "CANCELLED"}, Default: "CONFIRMED"},
		{Name: "booked_at", Type: field.TypeTime},
		{Name: "trip_id", Type: field.TypeInt},
	}
	// BookingsTable holds the schema information for the "bookings" table.
	BookingsTable = &schema.Table{
		Name:       "bookings",
		Columns:    BookingsColumns,
		PrimaryKey: []*schema.Column{BookingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bookings_trips_bookings",
				Columns:    []*schema.Column{BookingsColumns[4]},
				RefColumns: []*schema.Column{TripsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "booking_trip_id_status",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[4], BookingsColumns[2]},
			},
		},
	}
	// DeploymentsColumns holds the columns for the "deployments" table.
	DeploymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "deployed_at", Type: field.TypeTime},
		{Name: "driver_id", Type: field.TypeInt, Nullable: true},
		{Name: "trip_id", Type: field.TypeInt, Unique: true},
		{Name: "vehicle_id", Type: field.TypeInt, Nullable: true},
	}
	// DeploymentsTable holds the schema information for the "deployments" table.
	DeploymentsTable = &schema.Table{
		Name:       "deployments",
		Columns:    DeploymentsColumns,
		PrimaryKey: []*schema.Column{DeploymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deployments_drivers_deployments",
				Columns:    []*schema.Column{DeploymentsColumns[2]},
				RefColumns: []*schema.Column{DriversColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "deployments_trips_deployment",
				Columns:    []*schema.Column{DeploymentsColumns[3]},
				RefColumns: []*schema.Column{TripsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "deployments_vehicles_deployments",
				Columns:    []*schema.Column{DeploymentsColumns[4]},
				RefColumns: []*schema.Column{VehiclesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deployment_vehicle_id",
				Unique:  false,
				Columns: []*schema.Column{DeploymentsColumns[4]},
			},
			{
				Name:    "deployment_driver_id",
				Unique:  false,
				Columns: []*schema.Column{DeploymentsColumns[2]},
			},
		},
	}
	// DriversColumns holds the columns for the "drivers" table.
	DriversColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"available", "on_trip", "off_duty"}, Default: "available"},
	}
	// DriversTable holds the schema information for the "drivers" table.
	DriversTable = &schema.Table{
		Name:       "drivers",
		Columns:    DriversColumns,
		PrimaryKey: []*schema.Column{DriversColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "driverprofile_status",
				Unique:  false,
				Columns: []*schema.Column{DriversColumns[3]},
			},
		},
	}
	// PathsColumns holds the columns for the "paths" table.
	PathsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
	}
	// PathsTable holds the schema information for the "paths" table.
	PathsTable = &schema.Table{
		Name:       "paths",
		Columns:    PathsColumns,
		PrimaryKey: []*schema.Column{PathsColumns[0]},
	}
	// PathStopsColumns holds the columns for the "path_stops" table.
	PathStopsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "path_id", Type: field.TypeInt},
		{Name: "stop_id", Type: field.TypeInt},
	}
	// PathStopsTable holds the schema information for the "path_stops" table.
	PathStopsTable = &schema.Table{
		Name:       "path_stops",
		Columns:    PathStopsColumns,
		PrimaryKey: []*schema.Column{PathStopsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "path_stops_paths_path_stops",
				Columns:    []*schema.Column{PathStopsColumns[2]},
				RefColumns: []*schema.Column{PathsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "path_stops_stops_path_stops",
				Columns:    []*schema.Column{PathStopsColumns[3]},
				RefColumns: []*schema.Column{StopsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pathstop_path_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{PathStopsColumns[2], PathStopsColumns[1]},
			},
		},
	}
	// RoutesColumns holds the columns for the "routes" table.
	RoutesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"up", "down"}},
		{Name: "shift_time", Type: field.TypeString},
		{Name: "path_id", Type: field.TypeInt},
	}
	// RoutesTable holds the schema information for the "routes" table.
	RoutesTable = &schema.Table{
		Name:       "routes",
		Columns:    RoutesColumns,
		PrimaryKey: []*schema.Column{RoutesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "routes_paths_routes",
				Columns:    []*schema.Column{RoutesColumns[4]},
				RefColumns: []*schema.Column{PathsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "route_path_id",
				Unique:  false,
				Columns: []*schema.Column{RoutesColumns[4]},
			},
		},
	}
	// StopsColumns holds the columns for the "stops" table.
	StopsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
	}
	// StopsTable holds the schema information for the "stops" table.
	StopsTable = &schema.Table{
		Name:       "stops",
		Columns:    StopsColumns,
		PrimaryKey: []*schema.Column{StopsColumns[0]},
	}
	// TripsColumns holds the columns for the "trips" table.
	TripsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "trip_date", Type: field.TypeTime},
		{Name: "scheduled_time", Type: field.TypeString},
		{Name: "live_status", Type: field.TypeEnum, Enums: []string{"SCHEDULED", "IN_PROGRESS", "COMPLETED", "CANCELLED"}, Default: "SCHEDULED"},
		{Name: "route_id", Type: field.TypeInt, Nullable: true},
	}
	// TripsTable holds the schema information for the "trips" table.
	TripsTable = &schema.Table{
		Name:       "trips",
		Columns:    TripsColumns,
		PrimaryKey: []*schema.Column{TripsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "trips_routes_trips",
				Columns:    []*schema.Column{TripsColumns[5]},
				RefColumns: []*schema.Column{RoutesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trip_trip_date",
				Unique:  false,
				Columns: []*schema.Column{TripsColumns[2]},
			},
			{
				Name:    "trip_live_status",
				Unique:  false,
				Columns: []*schema.Column{TripsColumns[4]},
			},
			{
				Name:    "trip_trip_date_scheduled_time",
				Unique:  false,
				Columns: []*schema.Column{TripsColumns[2], TripsColumns[3]},
			},
			{
				Name:    "trip_display_name",
				Unique:  false,
				Columns: []*schema.Column{TripsColumns[1]},
			},
		},
	}
	// VehiclesColumns holds the columns for the "vehicles" table.
	VehiclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "registration_number", Type: field.TypeString, Unique: true},
		{Name: "vehicle_type", Type: field.TypeEnum, Enums: []string{"Bus", "Cab"}},
		{Name: "capacity", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"available", "deployed", "maintenance"}, Default: "available"},
	}
	// VehiclesTable holds the schema information for the "vehicles" table.
	VehiclesTable = &schema.Table{
		Name:       "vehicles",
		Columns:    VehiclesColumns,
		PrimaryKey: []*schema.Column{VehiclesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vehicle_status",
				Unique:  false,
				Columns: []*schema.Column{VehiclesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentSessionsTable,
		AuditLogsTable,
		BookingsTable,
		DeploymentsTable,
		DriversTable,
		PathsTable,
		PathStopsTable,
		RoutesTable,
		StopsTable,
		TripsTable,
		VehiclesTable,
	}
)

func init() {
	BookingsTable.ForeignKeys[0].RefTable = TripsTable
	DeploymentsTable.ForeignKeys[0].RefTable = DriversTable
	DeploymentsTable.ForeignKeys[1].RefTable = TripsTable
	DeploymentsTable.ForeignKeys[2].RefTable = VehiclesTable
	DriversTable.Annotation = &entsql.Annotation{
		Table: "drivers",
	}
	PathStopsTable.ForeignKeys[0].RefTable = PathsTable
	PathStopsTable.ForeignKeys[1].RefTable = StopsTable
	RoutesTable.ForeignKeys[0].RefTable = PathsTable
	TripsTable.ForeignKeys[0].RefTable = RoutesTable
}
