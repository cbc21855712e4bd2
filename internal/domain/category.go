package domain

// Category is a budget category as returned by the upstream API.
type Category struct {
	ID                     string  `json:"id"`
	CategoryGroupID        string  `json:"category_group_id"`
	CategoryGroupName      string  `json:"category_group_name,omitempty"`
	Name                   string  `json:"name"`
	Hidden                 bool    `json:"hidden"`
	Note                   *string `json:"note"`
	Budgeted               *int64  `json:"budgeted"`
	Activity               *int64  `json:"activity"`
	Balance                *int64  `json:"balance"`
	GoalType               *string `json:"goal_type"`
	GoalTarget             *int64  `json:"goal_target"`
	GoalPercentageComplete *int    `json:"goal_percentage_complete"`
	GoalOverallLeft        *int64  `json:"goal_overall_left"`
	Deleted                bool    `json:"deleted"`
}

// CategoryGroup groups categories; hidden groups are omitted from
// curated markdown but always present in structured output.
type CategoryGroup struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Hidden     bool       `json:"hidden"`
	Deleted    bool       `json:"deleted"`
	Categories []Category `json:"categories,omitempty"`
}

// CategoryView is the transformed category.
type CategoryView struct {
	ID                        string  `json:"id"`
	CategoryGroupID           string  `json:"category_group_id"`
	CategoryGroupName         string  `json:"category_group_name,omitempty"`
	Name                      string  `json:"name"`
	Hidden                    bool    `json:"hidden"`
	Note                      *string `json:"note"`
	Budgeted                  *string `json:"budgeted"`
	BudgetedMilliunits        *int64  `json:"budgeted_milliunits,omitempty"`
	Activity                  *string `json:"activity"`
	ActivityMilliunits        *int64  `json:"activity_milliunits,omitempty"`
	Balance                   *string `json:"balance"`
	BalanceMilliunits         *int64  `json:"balance_milliunits,omitempty"`
	GoalType                  *string `json:"goal_type"`
	GoalTarget                *string `json:"goal_target"`
	GoalTargetMilliunits      *int64  `json:"goal_target_milliunits,omitempty"`
	GoalPercentageComplete    *int    `json:"goal_percentage_complete"`
	GoalOverallLeft           *string `json:"goal_overall_left"`
	GoalOverallLeftMilliunits *int64  `json:"goal_overall_left_milliunits,omitempty"`
	Deleted                   bool    `json:"deleted"`
}

// CategoryGroupView is a category group with transformed categories.
type CategoryGroupView struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Hidden     bool           `json:"hidden"`
	Deleted    bool           `json:"deleted"`
	Categories []CategoryView `json:"categories"`
}

// SaveMonthCategory is the payload for updating a category's budgeted
// amount in a given month.
type SaveMonthCategory struct {
	Budgeted int64 `json:"budgeted"`
}
