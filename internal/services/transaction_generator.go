package services

import (
	"sort"
	"time"

	"finance-history/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryTemplate is a leaf category the generator can book transactions against
type CategoryTemplate struct {
	ID              uuid.UUID
	Name            string
	Icon            string
	ParentID        *uuid.UUID
	ParentName      string
	ParentIcon      string
	TransactionType string
	MinAmount       float64
	MaxAmount       float64
	Weight          int
}

type WalletTemplate struct {
	ID   uuid.UUID
	Name string
}

type transactionGenerator struct {
	faker      *gofakeit.Faker
	categories []CategoryTemplate
	wallets    []WalletTemplate
	weightSum  int
}

const (
	incomeSharePercent = 15
	salaryDay          = 1
	salaryHour         = 9
	businessHoursStart = 7
	businessHoursEnd   = 22
)

// NewTransactionGenerator creates a generator seeded from the clock
func NewTransactionGenerator() TransactionGeneratorInterface {
	return NewSeededTransactionGenerator(uint64(time.Now().UnixNano()))
}

// NewSeededTransactionGenerator creates a deterministic generator
func NewSeededTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	categories := initializeCategoryPool()
	weightSum := 0
	for _, c := range categories {
		weightSum += c.Weight
	}

	return &transactionGenerator{
		faker:      gofakeit.New(seed),
		categories: categories,
		wallets:    initializeWalletPool(),
		weightSum:  weightSum,
	}
}

func categoryID(name string) uuid.UUID {
	return models.StableID("category:" + name)
}

func initializeCategoryPool() []CategoryTemplate {
	type parent struct {
		name string
		icon string
	}
	type leaf struct {
		name      string
		icon      string
		low, high float64
		weight    int
	}

	var pool []CategoryTemplate

	addChildren := func(p parent, transactionType string, leaves ...leaf) {
		parentID := categoryID(p.name)
		for _, l := range leaves {
			pid := parentID
			pool = append(pool, CategoryTemplate{
				ID:              categoryID(p.name + "/" + l.name),
				Name:            l.name,
				Icon:            l.icon,
				ParentID:        &pid,
				ParentName:      p.name,
				ParentIcon:      p.icon,
				TransactionType: transactionType,
				MinAmount:       l.low,
				MaxAmount:       l.high,
				Weight:          l.weight,
			})
		}
	}

	addTopLevel := func(name, icon, transactionType string, low, high float64, weight int) {
		pool = append(pool, CategoryTemplate{
			ID:              categoryID(name),
			Name:            name,
			Icon:            icon,
			TransactionType: transactionType,
			MinAmount:       low,
			MaxAmount:       high,
			Weight:          weight,
		})
	}

	addChildren(parent{"Food & Beverage", "food"}, models.TransactionTypeExpense,
		leaf{"Groceries", "cart", 15, 180, 14},
		leaf{"Restaurants", "restaurant", 12, 90, 10},
		leaf{"Coffee", "coffee", 3, 8, 12},
	)
	addChildren(parent{"Transportation", "car"}, models.TransactionTypeExpense,
		leaf{"Taxi", "taxi", 8, 45, 6},
		leaf{"Fuel", "fuel", 30, 90, 5},
		leaf{"Public Transport", "bus", 2, 5, 8},
	)
	addChildren(parent{"Bills & Utilities", "bill"}, models.TransactionTypeExpense,
		leaf{"Electricity", "bolt", 40, 160, 2},
		leaf{"Internet", "wifi", 30, 80, 2},
		leaf{"Phone", "phone", 20, 70, 2},
	)
	addChildren(parent{"Shopping", "bag"}, models.TransactionTypeExpense,
		leaf{"Clothing", "shirt", 20, 200, 4},
		leaf{"Electronics", "laptop", 30, 900, 2},
	)
	addTopLevel("Entertainment", "ticket", models.TransactionTypeExpense, 8, 60, 5)
	addTopLevel("Healthcare", "heart", models.TransactionTypeExpense, 10, 250, 2)

	addChildren(parent{"Income", "wallet"}, models.TransactionTypeIncome,
		leaf{"Freelance", "briefcase", 150, 1200, 3},
		leaf{"Refunds", "refund", 5, 120, 2},
	)
	addTopLevel("Gifts", "gift", models.TransactionTypeIncome, 20, 300, 1)

	return pool
}

func initializeWalletPool() []WalletTemplate {
	names := []string{"Cash", "Checking Account", "Credit Card", "Savings"}
	wallets := make([]WalletTemplate, 0, len(names))
	for _, name := range names {
		wallets = append(wallets, WalletTemplate{ID: models.StableID("wallet:" + name), Name: name})
	}
	return wallets
}

// GetCategoryPool returns the category pool
func (g *transactionGenerator) GetCategoryPool() []CategoryTemplate {
	return g.categories
}

// GetWalletPool returns the wallet pool
func (g *transactionGenerator) GetWalletPool() []WalletTemplate {
	return g.wallets
}

// GenerateTransactionType returns income for roughly one transaction in seven
func (g *transactionGenerator) GenerateTransactionType() string {
	if g.faker.IntRange(1, 100) <= incomeSharePercent {
		return models.TransactionTypeIncome
	}
	return models.TransactionTypeExpense
}

// GenerateAmount picks an amount from a random category of the given direction
func (g *transactionGenerator) GenerateAmount(transactionType string) decimal.Decimal {
	category := g.pickCategory(transactionType)
	return g.amountFor(category)
}

func (g *transactionGenerator) amountFor(category CategoryTemplate) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(category.MinAmount, category.MaxAmount)).Round(2)
}

// GenerateTimestamp returns a time within [startDate, endDate] during waking hours when possible
func (g *transactionGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	if !endDate.After(startDate) {
		return startDate
	}

	ts := g.faker.DateRange(startDate, endDate)
	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
	withHour := day.Add(time.Duration(g.faker.IntRange(businessHoursStart, businessHoursEnd-1))*time.Hour +
		time.Duration(g.faker.IntRange(0, 59))*time.Minute)

	if withHour.Before(startDate) || withHour.After(endDate) {
		return ts
	}
	return withHour
}

// GenerateHistory produces count transactions between startDate and endDate, oldest first
func (g *transactionGenerator) GenerateHistory(userID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction {
	transactions := make([]*models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		category := g.pickCategory(g.GenerateTransactionType())
		transactions = append(transactions, g.newTransaction(userID, category, g.amountFor(category), g.GenerateTimestamp(startDate, endDate)))
	}

	sortTransactionsByDate(transactions)
	return transactions
}

// GenerateMonthlyIncome books a salary on the first of every month in range
func (g *transactionGenerator) GenerateMonthlyIncome(userID uuid.UUID, startDate, endDate time.Time) []*models.Transaction {
	salaryParentID := categoryID("Income")
	salary := CategoryTemplate{
		ID:              categoryID("Income/Salary"),
		Name:            "Salary",
		Icon:            "bank",
		ParentID:        &salaryParentID,
		ParentName:      "Income",
		ParentIcon:      "wallet",
		TransactionType: models.TransactionTypeIncome,
	}
	amount := decimal.NewFromFloat(g.faker.Float64Range(2500, 6000)).Round(0)

	var transactions []*models.Transaction
	month := time.Date(startDate.Year(), startDate.Month(), salaryDay, salaryHour, 0, 0, 0, startDate.Location())
	for ; !month.After(endDate); month = month.AddDate(0, 1, 0) {
		if month.Before(startDate) {
			continue
		}
		tx := g.newTransaction(userID, salary, amount, month)
		tx.WalletID = g.wallets[1].ID
		tx.WalletName = g.wallets[1].Name
		tx.Note = "Monthly salary"
		transactions = append(transactions, tx)
	}

	return transactions
}

func (g *transactionGenerator) pickCategory(transactionType string) CategoryTemplate {
	var candidates []CategoryTemplate
	total := 0
	for _, c := range g.categories {
		if c.TransactionType == transactionType {
			candidates = append(candidates, c)
			total += c.Weight
		}
	}
	if len(candidates) == 0 {
		return g.categories[0]
	}

	roll := g.faker.IntRange(1, total)
	for _, c := range candidates {
		roll -= c.Weight
		if roll <= 0 {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

func (g *transactionGenerator) newTransaction(userID uuid.UUID, category CategoryTemplate, amount decimal.Decimal, date time.Time) *models.Transaction {
	wallet := g.wallets[g.faker.IntRange(0, len(g.wallets)-1)]

	tx := &models.Transaction{
		ID:                 uuid.New(),
		UserID:             userID,
		TransactionType:    category.TransactionType,
		Amount:             amount,
		CategoryID:         category.ID,
		CategoryName:       category.Name,
		CategoryIcon:       category.Icon,
		ParentCategoryName: category.ParentName,
		ParentCategoryIcon: category.ParentIcon,
		WalletID:           wallet.ID,
		WalletName:         wallet.Name,
		TransactionDate:    date,
	}
	if category.ParentID != nil {
		parentID := *category.ParentID
		tx.ParentCategoryID = &parentID
	}
	if g.faker.IntRange(1, 100) <= 60 {
		tx.Note = g.noteFor(category)
	}

	return tx
}

func (g *transactionGenerator) noteFor(category CategoryTemplate) string {
	switch category.Name {
	case "Restaurants", "Coffee", "Groceries", "Clothing", "Electronics":
		return g.faker.Company()
	case "Taxi":
		return "Ride to " + g.faker.Street()
	default:
		return g.faker.Sentence(3)
	}
}

func sortTransactionsByDate(transactions []*models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].TransactionDate.Before(transactions[j].TransactionDate)
	})
}
