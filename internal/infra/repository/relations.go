package repository

var (
	CategoryRelations = Relations{
		Preload: []string{"Services"},
	}

	// Bookings and cart items are per-user data and stay off the public catalog.
	ServiceRelations = Relations{
		Preload: []string{"Images", "Availabilities", "Category", "Reviews"},
		Nested:  []string{"Images"},
		Created: []string{"Images", "Category"},
	}

	AvailabilityRelations = Relations{
		Preload: []string{"Service"},
	}

	BookingRelations = Relations{
		Preload: []string{"User", "Service", "Availability"},
		Created: []string{"Service", "Availability"},
	}

	CartItemRelations = Relations{
		Preload: []string{"Service"},
		Created: []string{"Service"},
	}

	ReviewRelations = Relations{
		Preload: []string{"User", "Service"},
	}

	BlogRelations = Relations{
		Preload: []string{"Author"},
	}

	FeedbackRelations = Relations{
		Preload: []string{"User"},
	}

	UserRelations = Relations{}
)
