package repository

import "github.com/Eursukkul/aquaagro-admin/internal/models"

var seedRides = []models.Ride{
	{ID: "WR001", Name: "Tsunami Wave Pool", Status: models.StatusOpen, Capacity: 150, CurrentGuests: 89, WaitTime: "5 mins", Description: "Giant wave pool with artificial tsunami waves", MaintenanceNext: "2024-01-20"},
	{ID: "WR002", Name: "Aqua Tornado Slide", Status: models.StatusOpen, Capacity: 20, CurrentGuests: 12, WaitTime: "8 mins", Description: "High-speed spiral water slide", MaintenanceNext: "2024-01-18"},
	{ID: "WR003", Name: "Lazy River Paradise", Status: models.StatusMaintenance, Capacity: 100, CurrentGuests: 0, WaitTime: "Closed", Description: "Relaxing circular river with gentle current", MaintenanceNext: "2024-01-16"},
	{ID: "WR004", Name: "Kids Splash Zone", Status: models.StatusOpen, Capacity: 80, CurrentGuests: 45, WaitTime: "No wait", Description: "Interactive water playground for children", MaintenanceNext: "2024-01-22"},
	{ID: "WR005", Name: "Extreme Drop Slide", Status: models.StatusOpen, Capacity: 15, CurrentGuests: 8, WaitTime: "12 mins", Description: "Thrilling vertical drop water slide", MaintenanceNext: "2024-01-19"},
	{ID: "WR006", Name: "Family Raft Adventure", Status: models.StatusMaintenance, Capacity: 30, CurrentGuests: 0, WaitTime: "Closed", Description: "Multi-person raft slide through winding course", MaintenanceNext: "2024-01-17"},
}

var seedActivities = []models.Activity{
	{ID: "AG001", Name: "Tractor Safari Adventure", Status: models.StatusOpen, Capacity: 25, CurrentGuests: 18, Duration: "45 mins", Description: "Guided tractor ride through organic farms", NextTour: "2:30 PM", Guide: "John Miller"},
	{ID: "AG002", Name: "Pottery Workshop", Status: models.StatusOpen, Capacity: 15, CurrentGuests: 8, Duration: "60 mins", Description: "Hands-on clay pottery making experience", NextTour: "3:00 PM", Guide: "Sarah Johnson"},
	{ID: "AG003", Name: "Animal Feeding Experience", Status: models.StatusMaintenance, Capacity: 20, CurrentGuests: 0, Duration: "30 mins", Description: "Interactive feeding session with farm animals", NextTour: "Closed", Guide: "Mike Chen"},
	{ID: "AG004", Name: "Organic Garden Tour", Status: models.StatusOpen, Capacity: 30, CurrentGuests: 22, Duration: "40 mins", Description: "Educational walk through sustainable gardens", NextTour: "2:15 PM", Guide: "Lisa Anderson"},
	{ID: "AG005", Name: "Cheese Making Workshop", Status: models.StatusOpen, Capacity: 12, CurrentGuests: 5, Duration: "90 mins", Description: "Learn traditional cheese making techniques", NextTour: "4:00 PM", Guide: "Robert Wilson"},
	{ID: "AG006", Name: "Horseback Riding", Status: models.StatusOpen, Capacity: 10, CurrentGuests: 6, Duration: "50 mins", Description: "Gentle horseback rides for all skill levels", NextTour: "2:45 PM", Guide: "Emma Davis"},
}

var seedStaff = []models.StaffMember{
	{ID: "ST001", Name: "John Miller", Role: "Tractor Tour Guide", Department: models.DeptAgroActivities, Phone: "+1 (555) 123-4567", Email: "john.miller@aquaagro.com", Shift: "Morning (8AM - 4PM)", Status: models.StaffActive, JoinDate: "2023-03-15"},
	{ID: "ST002", Name: "Sarah Johnson", Role: "Pottery Instructor", Department: models.DeptAgroActivities, Phone: "+1 (555) 234-5678", Email: "sarah.johnson@aquaagro.com", Shift: "Afternoon (12PM - 8PM)", Status: models.StaffActive, JoinDate: "2022-08-20"},
	{ID: "ST003", Name: "Mike Chen", Role: "Water Safety Lifeguard", Department: models.DeptWaterRides, Phone: "+1 (555) 345-6789", Email: "mike.chen@aquaagro.com", Shift: "Morning (8AM - 4PM)", Status: models.StaffOnLeave, JoinDate: "2023-01-10"},
	{ID: "ST004", Name: "Lisa Anderson", Role: "Garden Tour Guide", Department: models.DeptAgroActivities, Phone: "+1 (555) 456-7890", Email: "lisa.anderson@aquaagro.com", Shift: "Full Day (9AM - 6PM)", Status: models.StaffActive, JoinDate: "2021-11-05"},
	{ID: "ST005", Name: "Robert Wilson", Role: "Maintenance Technician", Department: models.DeptMaintenance, Phone: "+1 (555) 567-8901", Email: "robert.wilson@aquaagro.com", Shift: "Night (10PM - 6AM)", Status: models.StaffActive, JoinDate: "2022-06-12"},
	{ID: "ST006", Name: "Emma Davis", Role: "Riding Instructor", Department: models.DeptAgroActivities, Phone: "+1 (555) 678-9012", Email: "emma.davis@aquaagro.com", Shift: "Morning (8AM - 4PM)", Status: models.StaffActive, JoinDate: "2023-09-18"},
	{ID: "ST007", Name: "David Miller", Role: "Slide Operator", Department: models.DeptWaterRides, Phone: "+1 (555) 789-0123", Email: "david.miller@aquaagro.com", Shift: "Afternoon (12PM - 8PM)", Status: models.StaffInactive, JoinDate: "2022-04-25"},
}

var seedStatCards = []models.StatCard{
	{Title: "Total Visitors Today", Value: "1,247", Change: "+12% from yesterday", Trend: models.TrendUp, Color: "primary"},
	{Title: "Tickets Sold", Value: "892", Change: "+8% from yesterday", Trend: models.TrendUp, Color: "water"},
	{Title: "Revenue Today", Value: "$15,420", Change: "+15% from yesterday", Trend: models.TrendUp, Color: "agro"},
	{Title: "Active Rides", Value: "24/28", Change: "4 under maintenance", Trend: models.TrendNeutral, Color: "secondary"},
}

var seedWeeklyVisitors = []models.VisitorPoint{
	{Name: "Mon", Visitors: 850},
	{Name: "Tue", Visitors: 920},
	{Name: "Wed", Visitors: 780},
	{Name: "Thu", Visitors: 1100},
	{Name: "Fri", Visitors: 1350},
	{Name: "Sat", Visitors: 1500},
	{Name: "Sun", Visitors: 1247},
}

var seedActivitySplit = []models.Share{
	{Name: "Water Rides", Value: 45, Color: "#0ea5e9"},
	{Name: "Agro Tours", Value: 30, Color: "#22c55e"},
	{Name: "Combo Packages", Value: 25, Color: "#8b5cf6"},
}

var seedMonthlyRevenue = []models.MonthlyRevenue{
	{Month: "Jan", Revenue: 85000, Visitors: 2400},
	{Month: "Feb", Revenue: 92000, Visitors: 2650},
	{Month: "Mar", Revenue: 78000, Visitors: 2200},
	{Month: "Apr", Revenue: 108000, Visitors: 3100},
	{Month: "May", Revenue: 125000, Visitors: 3600},
	{Month: "Jun", Revenue: 142000, Visitors: 4100},
	{Month: "Jul", Revenue: 158000, Visitors: 4500},
	{Month: "Aug", Revenue: 155000, Visitors: 4400},
	{Month: "Sep", Revenue: 135000, Visitors: 3800},
	{Month: "Oct", Revenue: 118000, Visitors: 3300},
	{Month: "Nov", Revenue: 98000, Visitors: 2800},
	{Month: "Dec", Revenue: 112000, Visitors: 3200},
}

var seedDemographics = []models.Share{
	{Name: "Families (25-45)", Value: 45, Color: "#0ea5e9"},
	{Name: "Young Adults (18-30)", Value: 30, Color: "#22c55e"},
	{Name: "Seniors (60+)", Value: 15, Color: "#8b5cf6"},
	{Name: "Teenagers (13-17)", Value: 10, Color: "#f59e0b"},
}

var seedTopActivities = []models.TopActivity{
	{Name: "Tsunami Wave Pool", Visitors: 1250, Revenue: 18750},
	{Name: "Tractor Safari", Visitors: 980, Revenue: 14700},
	{Name: "Aqua Tornado Slide", Visitors: 850, Revenue: 12750},
	{Name: "Pottery Workshop", Visitors: 720, Revenue: 10800},
	{Name: "Organic Garden Tour", Visitors: 650, Revenue: 9750},
	{Name: "Kids Splash Zone", Visitors: 580, Revenue: 8700},
}

// Seeded key metrics that are not derivable from the monthly series.
const (
	seedAvgVisitDuration = "4.2h"
	seedSatisfaction     = "4.8/5"
)

func DefaultSettings() models.Settings {
	return models.Settings{
		ParkName:          "AquaAgro Water & Agro Park",
		ContactEmail:      "info@aquaagro.com",
		ContactPhone:      "+1 (555) 123-PARK",
		Address:           "123 Paradise Way, Sunshine Valley, CA 94542",
		OpeningHours:      "9:00 AM - 6:00 PM",
		ClosingHours:      "8:00 PM (Summer)",
		WaterParkPrice:    45,
		AgroTourPrice:     30,
		ComboPackagePrice: 65,
		MaxCapacity:       2000,
		Description:       "Experience the perfect blend of thrilling water adventures and peaceful agro tourism at AquaAgro Park.",
		Features: models.FeatureToggles{
			OnlineBooking:       true,
			MobileNotifications: true,
			WeatherUpdates:      true,
			GroupDiscounts:      true,
		},
	}
}
