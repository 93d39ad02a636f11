package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdInsight são os contadores acumulados de um anúncio como a Graph API devolve (números em string)
type AdInsight struct {
	AdID        string   `json:"ad_id"`
	Actions     []Action `json:"actions"`
	Clicks      string   `json:"clicks"`
	Impressions string   `json:"impressions"`
	Objective   string   `json:"objective"`
	Spend       string   `json:"spend"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

// Mapeamento de "objective" -> "action_type" que conta como resultado
var MetaObjectiveToActionType = map[string]string{
	"LINK_CLICKS":        "link_click",
	"POST_ENGAGEMENT":    "post_engagement",
	"LEAD_GENERATION":    "lead",
	"OUTCOME_LEADS":      "lead",
	"CONVERSIONS":        "offsite_conversion",
	"MESSAGES":           "onsite_conversion.messaging_first_reply",
	"OUTCOME_ENGAGEMENT": "onsite_conversion.messaging_conversation_started_7d",
}

// LeadActionType é usado quando o objetivo não está no mapeamento
const LeadActionType = "lead"

// GetLeads soma as ações do tipo que conta como lead para o objetivo do anúncio
func (a *AdInsight) GetLeads() int64 {
	actionType, ok := MetaObjectiveToActionType[a.Objective]
	if !ok {
		actionType = LeadActionType
	}

	var leads int64
	for _, action := range a.Actions {
		if action.ActionType != actionType {
			continue
		}

		value, err := strconv.ParseInt(action.Value, 10, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id":        a.AdID,
				"action_type":  action.ActionType,
				"action_value": action.Value,
				"error":        err.Error(),
			}).Warn("insights: error converting action value to integer")
			continue
		}
		leads += value
	}

	return leads
}

type CreateResponse struct {
	ID string `json:"id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
