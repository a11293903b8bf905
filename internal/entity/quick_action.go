package entity

import (
	"fmt"
	"time"
)

type QuickAction string

const (
	QuickActionMarkHotLead   QuickAction = "mark_hot_lead"
	QuickActionIncreaseScore QuickAction = "increase_score"
	QuickActionAddToList     QuickAction = "add_to_list"
	QuickActionAssignOwner   QuickAction = "assign_owner"
)

// ListManagementMessage is answered for add_to_list, which has no property mutation.
const ListManagementMessage = "List management requires separate API call"

func ParseQuickAction(s string) (QuickAction, error) {
	switch a := QuickAction(s); a {
	case QuickActionMarkHotLead, QuickActionIncreaseScore, QuickActionAddToList, QuickActionAssignOwner:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidArgument, s)
	}
}

func (a QuickAction) String() string {
	return string(a)
}

// Properties returns the contact property assignments the action applies.
// A nil map with a nil error means the action has no remote effect.
func (a QuickAction) Properties(value string, now time.Time) (map[string]string, error) {
	switch a {
	case QuickActionMarkHotLead:
		return map[string]string{
			"hs_lead_status": "OPEN",
			"lifecyclestage": "opportunity",
		}, nil
	case QuickActionIncreaseScore:
		// Lead score is computed by HubSpot; touching the assignment date bumps it.
		return map[string]string{
			"hubspot_owner_assigneddate": now.UTC().Format(time.RFC3339),
		}, nil
	case QuickActionAddToList:
		return nil, nil
	case QuickActionAssignOwner:
		if value == "" {
			return nil, fmt.Errorf("%w: assign_owner requires an owner id value", ErrInvalidArgument)
		}

		return map[string]string{"hubspot_owner_id": value}, nil
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidArgument, a)
	}
}

type ActivityType string

const (
	ActivityContactCreated    ActivityType = "CONTACT_CREATED"
	ActivityContactUpdated    ActivityType = "CONTACT_UPDATED"
	ActivityDealCreated       ActivityType = "DEAL_CREATED"
	ActivityNoteCreated       ActivityType = "NOTE_CREATED"
	ActivityQuickAction       ActivityType = "QUICK_ACTION"
	ActivityTaskCreated       ActivityType = "TASK_CREATED"
	ActivityTagsUpdated       ActivityType = "TAGS_UPDATED"
	ActivityCompanyAssociated ActivityType = "COMPANY_ASSOCIATED"
)

func ParseActivityType(s string) (ActivityType, error) {
	switch t := ActivityType(s); t {
	case ActivityContactCreated, ActivityContactUpdated, ActivityDealCreated, ActivityNoteCreated,
		ActivityQuickAction, ActivityTaskCreated, ActivityTagsUpdated, ActivityCompanyAssociated:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown activity type %q", ErrInvalidArgument, s)
	}
}
