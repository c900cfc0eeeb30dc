package report

import "github.com/kailas-cloud/dinemenu/internal/domain/report"

// fixtures are the sample summaries shipped with the handheld app. They are
// seeded only when reports.seed_fixtures is enabled and the key is absent.
var fixtures = map[report.Kind][]report.Row{
	report.Today: {
		{ID: 1, Label: "B001", User: "John Doe", Amount: 25.50, Time: "10:30 AM"},
		{ID: 2, Label: "B002", User: "Jane Smith", Amount: 18.75, Time: "11:15 AM"},
		{ID: 3, Label: "B003", User: "Mike Johnson", Amount: 32.20, Time: "12:45 PM"},
		{ID: 4, Label: "B004", User: "Sarah Wilson", Amount: 15.90, Time: "1:20 PM"},
		{ID: 5, Label: "B005", User: "David Brown", Amount: 28.65, Time: "2:30 PM"},
		{ID: 6, Label: "B006", User: "Emily Davis", Amount: 42.30, Time: "3:15 PM"},
		{ID: 7, Label: "B007", User: "Robert Miller", Amount: 19.85, Time: "3:45 PM"},
		{ID: 8, Label: "B008", User: "Lisa Anderson", Amount: 37.60, Time: "4:20 PM"},
		{ID: 9, Label: "B009", User: "Chris Taylor", Amount: 23.75, Time: "4:55 PM"},
		{ID: 10, Label: "B010", User: "Amanda White", Amount: 31.40, Time: "5:30 PM"},
		{ID: 11, Label: "B011", User: "Kevin Martinez", Amount: 29.95, Time: "6:10 PM"},
		{ID: 12, Label: "B012", User: "Rachel Garcia", Amount: 16.80, Time: "6:45 PM"},
	},
	report.Day: {
		{ID: 1, Label: "Monday", Bills: 89, Amount: 2340.75},
		{ID: 2, Label: "Tuesday", Bills: 76, Amount: 1980.50},
		{ID: 3, Label: "Wednesday", Bills: 93, Amount: 2520.90},
		{ID: 4, Label: "Thursday", Bills: 102, Amount: 2785.60},
		{ID: 5, Label: "Friday", Bills: 134, Amount: 3680.30},
		{ID: 6, Label: "Saturday", Bills: 156, Amount: 4290.45},
		{ID: 7, Label: "Sunday", Bills: 128, Amount: 3520.80},
	},
	report.Month: {
		{ID: 1, Label: "January 2024", Bills: 145, Amount: 3250.75},
		{ID: 2, Label: "February 2024", Bills: 132, Amount: 2980.50},
		{ID: 3, Label: "March 2024", Bills: 156, Amount: 3420.90},
		{ID: 4, Label: "April 2024", Bills: 189, Amount: 4125.60},
		{ID: 5, Label: "May 2024", Bills: 201, Amount: 4560.30},
		{ID: 6, Label: "June 2024", Bills: 178, Amount: 3890.45},
		{ID: 7, Label: "July 2024", Bills: 165, Amount: 3675.80},
		{ID: 8, Label: "August 2024", Bills: 192, Amount: 4280.90},
		{ID: 9, Label: "September 2024", Bills: 173, Amount: 3825.70},
		{ID: 10, Label: "October 2024", Bills: 188, Amount: 4150.25},
		{ID: 11, Label: "November 2024", Bills: 167, Amount: 3720.40},
		{ID: 12, Label: "December 2024", Bills: 142, Amount: 3180.85},
	},
	report.Item: {
		{ID: 1, Label: "Burger", Quantity: 145, Amount: 1450},
		{ID: 2, Label: "Pizza", Quantity: 89, Amount: 1780},
		{ID: 3, Label: "French Fries", Quantity: 203, Amount: 812},
		{ID: 4, Label: "Chicken Wings", Quantity: 76, Amount: 1140},
		{ID: 5, Label: "Pasta", Quantity: 92, Amount: 1288},
		{ID: 6, Label: "Sandwich", Quantity: 134, Amount: 1072},
		{ID: 7, Label: "Salad", Quantity: 67, Amount: 670},
		{ID: 8, Label: "Steak", Quantity: 45, Amount: 1350},
		{ID: 9, Label: "Soup", Quantity: 112, Amount: 560},
		{ID: 10, Label: "Ice Cream", Quantity: 156, Amount: 624},
		{ID: 11, Label: "Coffee", Quantity: 298, Amount: 894},
		{ID: 12, Label: "Juice", Quantity: 187, Amount: 561},
		{ID: 13, Label: "Cake", Quantity: 34, Amount: 510},
		{ID: 14, Label: "Cookies", Quantity: 89, Amount: 267},
		{ID: 15, Label: "Tacos", Quantity: 78, Amount: 702},
	},
}
