package resource

import (
	"math"

	"github.com/BruksfildServices01/booking-api/internal/query"
)

var timestamps = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func sortable(extra ...string) map[string]string {
	out := make(map[string]string, len(timestamps)+len(extra))
	for k, v := range timestamps {
		out[k] = v
	}
	for _, c := range extra {
		out[c] = c
	}
	return out
}

var CategoryDefinition = Definition{
	Name: "category",
	Schema: query.Schema{
		Searchable: []string{"title"},
		Filterable: []query.Field{
			query.Eq("title", "title", query.KindString),
		},
		Sortable: sortable("title"),
	},
	Updatable: []query.Field{
		query.Eq("title", "title", query.KindString),
	},
}

var ServiceDefinition = Definition{
	Name: "service",
	Schema: query.Schema{
		Searchable: []string{"name", "description", "location"},
		Filterable: []query.Field{
			query.Eq("category_id", "category_id", query.KindUUID),
			query.Eq("location", "location", query.KindString),
			query.Eq("is_available", "is_available", query.KindBool),
			query.Gte("min_price", "price", query.KindFloat),
			query.Lte("max_price", "price", query.KindFloat),
		},
		Sortable: sortable("name", "price", "duration_min"),
	},
	Updatable: []query.Field{
		query.Eq("name", "name", query.KindString),
		query.Eq("description", "description", query.KindString),
		query.Eq("price", "price", query.KindFloat).Between(0, math.MaxFloat64),
		query.Eq("location", "location", query.KindString),
		query.Eq("duration_min", "duration_min", query.KindInt).Between(0, math.MaxInt32),
		query.Eq("is_available", "is_available", query.KindBool),
		query.Eq("category_id", "category_id", query.KindUUID),
	},
}

var AvailabilityDefinition = Definition{
	Name: "availability",
	Schema: query.Schema{
		Filterable: []query.Field{
			query.Eq("service_id", "service_id", query.KindUUID),
			query.Eq("date", "date", query.KindDate),
			query.Eq("is_booked", "is_booked", query.KindBool),
		},
		Sortable: sortable("date", "start_time"),
	},
	Updatable: []query.Field{
		query.Eq("date", "date", query.KindDate),
		query.Eq("start_time", "start_time", query.KindString),
		query.Eq("end_time", "end_time", query.KindString),
	},
}

var BookingDefinition = Definition{
	Name: "booking",
	Schema: query.Schema{
		Filterable: []query.Field{
			query.Eq("user_id", "user_id", query.KindUUID),
			query.Eq("service_id", "service_id", query.KindUUID),
			query.Eq("status", "status", query.KindString),
		},
		Sortable: sortable("status"),
	},
	// Status moves only through the booking lifecycle endpoints.
	Updatable: []query.Field{
		query.Eq("notes", "notes", query.KindString),
	},
}

var CartItemDefinition = Definition{
	Name: "cart",
	Schema: query.Schema{
		Filterable: []query.Field{
			query.Eq("user_id", "user_id", query.KindUUID),
			query.Eq("service_id", "service_id", query.KindUUID),
		},
		Sortable: sortable("quantity"),
	},
	Updatable: []query.Field{
		query.Eq("quantity", "quantity", query.KindInt).Between(1, math.MaxInt32),
	},
}

var ReviewDefinition = Definition{
	Name: "review",
	Schema: query.Schema{
		Searchable: []string{"comment"},
		Filterable: []query.Field{
			query.Eq("user_id", "user_id", query.KindUUID),
			query.Eq("service_id", "service_id", query.KindUUID),
			query.Eq("rating", "rating", query.KindInt),
		},
		Sortable: sortable("rating"),
	},
	Updatable: []query.Field{
		query.Eq("rating", "rating", query.KindInt).Between(1, 5),
		query.Eq("comment", "comment", query.KindString),
	},
}

var BlogDefinition = Definition{
	Name: "blog",
	Schema: query.Schema{
		Searchable: []string{"title", "content"},
		Filterable: []query.Field{
			query.Eq("author_id", "author_id", query.KindUUID),
		},
		Sortable: sortable("title"),
	},
	Updatable: []query.Field{
		query.Eq("title", "title", query.KindString),
		query.Eq("content", "content", query.KindString),
		query.Eq("image_url", "image_url", query.KindString),
	},
}

var FeedbackDefinition = Definition{
	Name: "feedback",
	Schema: query.Schema{
		Searchable: []string{"comment"},
		Filterable: []query.Field{
			query.Eq("user_id", "user_id", query.KindUUID),
		},
		Sortable: sortable(),
	},
	Updatable: []query.Field{
		query.Eq("comment", "comment", query.KindString),
	},
}

// ProfileDefinition covers the fields a user may change on their own record.
var ProfileDefinition = Definition{
	Name: "profile",
	Updatable: []query.Field{
		query.Eq("name", "name", query.KindString),
		query.Eq("phone", "phone", query.KindString),
		query.Eq("address", "address", query.KindString),
		query.Eq("profile_image", "profile_image", query.KindString),
	},
}
