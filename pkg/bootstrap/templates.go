package bootstrap

import "finboard/models"

// Fixed templates every new account starts from.

func defaultPots(userID uint) []models.Pot {
	return []models.Pot{
		{UserID: userID, Name: "Savings", Amount: 159, Target: 2000, Color: "green"},
		{UserID: userID, Name: "Concert Ticket", Amount: 110, Target: 150, Color: "yellow"},
		{UserID: userID, Name: "Gift", Amount: 40, Target: 60, Color: "cyan"},
		{UserID: userID, Name: "New Laptop", Amount: 10, Target: 1000, Color: "navy"},
		{UserID: userID, Name: "Holiday", Amount: 531, Target: 1440, Color: "red"},
	}
}

func defaultBudgets(userID uint) []models.Budget {
	return []models.Budget{
		{UserID: userID, Category: "Entertainment", Amount: 750, Color: "green"},
		{UserID: userID, Category: "Bills", Amount: 750, Color: "yellow"},
		{UserID: userID, Category: "Groceries", Amount: 75, Color: "cyan"},
		{UserID: userID, Category: "Dining Out", Amount: 75, Color: "navy"},
		{UserID: userID, Category: "Personal Care", Amount: 100, Color: "red"},
		{UserID: userID, Category: "Transportation", Amount: 120, Color: "purple"},
	}
}

var wellKnownPayees = []string{
	"Netflix",
	"Spotify",
	"Amazon",
	"AT&T",
	"Verizon",
	"Apple",
	"Google",
}

var billStatuses = []models.BillStatus{
	models.BillPaid,
	models.BillDue,
	models.BillUpcoming,
}

var billTypes = []models.BillType{
	models.BillMonthly,
	models.BillOneTime,
}

var transactionCategories = []string{
	"Food",
	"Shopping",
	"Transport",
	"Bills",
	"Entertainment",
}
