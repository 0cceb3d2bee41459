package budget

import (
	"fmt"

	"github.com/theirongolddev/cbudget/internal/model"
)

// Notify builds the success or shortfall message for a result.
func Notify(r model.BudgetResult) model.Notification {
	if r.MeetsGoal() {
		return model.Notification{
			Kind:  model.NoticeSuccess,
			Title: "Budget",
			Message: fmt.Sprintf("Congratulations! Your balance of %s meets your savings goal of %s.",
				r.Balance.String(), r.SavingsGoal.String()),
		}
	}
	return model.Notification{
		Kind:  model.NoticeShortfall,
		Title: "Budget",
		Message: fmt.Sprintf("Your balance is %s, which is less than your savings goal of %s. Keep saving!",
			r.Balance.String(), r.SavingsGoal.String()),
	}
}

// InvalidInputNotice is shown for any parse failure.
func InvalidInputNotice() model.Notification {
	return model.Notification{
		Kind:    model.NoticeError,
		Title:   "Error",
		Message: "Please enter valid numbers",
	}
}
