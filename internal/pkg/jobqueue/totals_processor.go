package jobqueue

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
	"github.com/flexcharge/FlexCharge/app/repository"
)

// processRecalcCustomerTotalsJob recomputes a customer's denormalized spend
// total from their completed orders. Runs after order writes so list views
// never pay for the aggregation.
func (q *Queue) processRecalcCustomerTotalsJob(job *Job) error {
	payload, err := RecalcCustomerTotalsPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	repos := repository.GetGlobalRepositories()

	customer, err := repos.Customer.GetByID(payload.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Customer deleted between enqueue and processing; nothing to do.
			return nil
		}
		return fmt.Errorf("load customer %d: %w", payload.CustomerID, err)
	}

	orders, err := repos.Order.GetByCustomerID(payload.CustomerID)
	if err != nil {
		return fmt.Errorf("load orders for customer %d: %w", payload.CustomerID, err)
	}

	total := decimal.Zero
	for _, order := range orders {
		if order.Status == models.OrderStatusCompleted {
			total = total.Add(order.Amount)
		}
	}

	customer.TotalSpent = decimal.NullDecimal{Decimal: total, Valid: true}
	if err := repos.Customer.Update(customer); err != nil {
		return fmt.Errorf("update customer %d: %w", payload.CustomerID, err)
	}
	return nil
}
