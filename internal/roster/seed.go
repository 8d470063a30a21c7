package roster

import "example.com/roster/internal/domain"

// SeedActivities returns the activities every process starts with.
func SeedActivities() []domain.Activity {
	return []domain.Activity{
		{
			Name:         "Chess Club",
			Description:  "Learn and play chess with fellow students",
			Schedule:     "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			Category:     domain.CategoryIntellectual,
			Participants: []string{"alice.smith@mergington.edu", "bob.jones@mergington.edu", "carol.white@mergington.edu"},
		},
		{
			Name:         "Programming Class",
			Description:  "Introduction to Python programming",
			Schedule:     "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			Category:     domain.CategoryIntellectual,
			Participants: []string{"david.brown@mergington.edu", "emma.davis@mergington.edu"},
		},
		{
			Name:         "Gym Class",
			Description:  "Physical education and fitness training",
			Schedule:     "Daily, 3:00 PM - 4:30 PM",
			Category:     domain.CategorySports,
			Participants: []string{"frank.miller@mergington.edu", "grace.wilson@mergington.edu", "henry.moore@mergington.edu", "iris.taylor@mergington.edu"},
		},
		{
			Name:         "Soccer Team",
			Description:  "Competitive soccer training and matches",
			Schedule:     "Mondays, Wednesdays, and Fridays, 4:00 PM - 6:00 PM",
			Category:     domain.CategorySports,
			Participants: []string{"jack.anderson@mergington.edu", "kate.thomas@mergington.edu"},
		},
		{
			Name:         "Swimming Club",
			Description:  "Learn swimming techniques and compete in meets",
			Schedule:     "Tuesdays and Thursdays, 5:00 PM - 6:30 PM",
			Category:     domain.CategorySports,
			Participants: []string{"liam.jackson@mergington.edu"},
		},
		{
			Name:         "Art Studio",
			Description:  "Painting, drawing, and mixed media exploration",
			Schedule:     "Wednesdays and Fridays, 3:30 PM - 5:30 PM",
			Category:     domain.CategoryArtistic,
			Participants: []string{"mia.martin@mergington.edu", "noah.garcia@mergington.edu", "olivia.lopez@mergington.edu"},
		},
		{
			Name:         "Drama Club",
			Description:  "Acting, theater performance, and stage production",
			Schedule:     "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			Category:     domain.CategoryArtistic,
			Participants: []string{"peter.lee@mergington.edu", "quinn.harris@mergington.edu"},
		},
		{
			Name:         "Debate Team",
			Description:  "Develop critical thinking and public speaking skills",
			Schedule:     "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			Category:     domain.CategoryIntellectual,
			Participants: []string{},
		},
		{
			Name:         "Science Club",
			Description:  "Hands-on experiments and science competitions",
			Schedule:     "Thursdays and Fridays, 3:30 PM - 5:30 PM",
			Category:     domain.CategoryIntellectual,
			Participants: []string{"rachel.clark@mergington.edu"},
		},
	}
}
