package wizard

// Flow type names match the wizard entry actions.
const (
	FlowCreateTrip  = "create_trip"
	FlowCreateRoute = "create_route"
	FlowCreatePath  = "create_path"
	FlowCreateStop  = "create_stop"
)

func builtinFlows() []Flow {
	return []Flow{
		{
			Type:  FlowCreateTrip,
			Title: "the trip creation wizard",
			Steps: []Step{
				{
					Key:      "display_name",
					Prompt:   "What should the trip be called?",
					Hint:     "e.g. Morning Express",
					Validate: Text("trip name"),
				},
				{
					Key:      "trip_date",
					Prompt:   "What date does it run?",
					Hint:     "YYYY-MM-DD",
					Validate: ISODate(),
				},
				{
					Key:      "scheduled_time",
					Prompt:   "What time does it depart?",
					Hint:     "HH:MM, 24-hour",
					Validate: HHMM(),
				},
				{
					Key:             "route_id",
					Prompt:          "Which route does it follow? Enter the route id, or skip.",
					OptionsProvider: "routes",
					Validate:        OptionalID("route"),
				},
				{
					Key:             "vehicle_id",
					Prompt:          "Which vehicle should be deployed? Enter the vehicle id, or skip.",
					OptionsProvider: "vehicles",
					Validate:        OptionalID("vehicle"),
				},
				{
					Key:             "driver_id",
					Prompt:          "Which driver should take it? Enter the driver id, or skip.",
					OptionsProvider: "drivers",
					Validate:        OptionalID("driver"),
				},
				{
					Key:      "confirmed",
					Prompt:   "Create this trip with the details above? (yes/no)",
					Validate: YesNo(),
				},
			},
		},
		{
			Type:  FlowCreateRoute,
			Title: "the route creation wizard",
			Steps: []Step{
				{
					Key:      "name",
					Prompt:   "What should the route be called?",
					Validate: Text("route name"),
				},
				{
					Key:             "path_id",
					Prompt:          "Which path does it use? Enter the path id.",
					OptionsProvider: "paths",
					Validate:        PositiveInt("path id"),
				},
				{
					Key:      "direction",
					Prompt:   "Which direction, up or down?",
					Validate: OneOf("direction", "up", "down"),
				},
				{
					Key:      "shift_time",
					Prompt:   "What shift time does it run at?",
					Hint:     "HH:MM, 24-hour",
					Validate: HHMM(),
				},
			},
		},
		{
			Type:  FlowCreatePath,
			Title: "the path creation wizard",
			Steps: []Step{
				{
					Key:      "name",
					Prompt:   "What should the path be called?",
					Validate: Text("path name"),
				},
				{
					Key:             "stop_ids",
					Prompt:          "Which stops does it pass through, in order? Enter stop ids separated by commas.",
					OptionsProvider: "stops",
					Validate:        IDList("stop", 2),
				},
				{
					Key:      "confirmed",
					Prompt:   "Create this path with the stops above? (yes/no)",
					Validate: YesNo(),
				},
			},
		},
		{
			Type:  FlowCreateStop,
			Title: "the stop creation wizard",
			Steps: []Step{
				{
					Key:      "name",
					Prompt:   "What should the stop be called?",
					Validate: Text("stop name"),
				},
				{
					Key:      "latitude",
					Prompt:   "What is its latitude?",
					Hint:     "decimal degrees, e.g. 12.9716",
					Validate: Coordinate("latitude", 90),
				},
				{
					Key:      "longitude",
					Prompt:   "What is its longitude?",
					Hint:     "decimal degrees, e.g. 77.5946",
					Validate: Coordinate("longitude", 180),
				},
				{
					Key:      "confirmed",
					Prompt:   "Create this stop? (yes/no)",
					Validate: YesNo(),
				},
			},
		},
	}
}
