package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type CreateWagerRequest struct {
	UserID          string  `json:"userId" validate:"required"`
	Kind            string  `json:"kind" validate:"required,oneof=SOLO GROUP CHALLENGE"`
	PlanID          string  `json:"planId" validate:"required"`
	PeriodWeeks     int     `json:"period_weeks" validate:"required,min=1"`
	InitialWeightKg float64 `json:"initial_weight_kg" validate:"required,gt=0"`
	TargetWeightKg  float64 `json:"target_weight_kg" validate:"required,gt=0,ltfield=InitialWeightKg"`
}

func (r *CreateWagerRequest) Validate() error { return validate.Struct(r) }

type ValidateGoalRequest struct {
	InitialWeightKg float64 `json:"initial_weight_kg" validate:"required,gt=0"`
	TargetWeightKg  float64 `json:"target_weight_kg" validate:"required,gt=0,ltfield=InitialWeightKg"`
	DurationWeeks   int     `json:"duration_weeks" validate:"required,min=1"`
}

func (r *ValidateGoalRequest) Validate() error { return validate.Struct(r) }

type CancelWagerRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (r *CancelWagerRequest) Validate() error { return validate.Struct(r) }

type VerifyWagerRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (r *VerifyWagerRequest) Validate() error { return validate.Struct(r) }

type SettleWagerRequest struct {
	UserID        string  `json:"userId" validate:"required"`
	FinalWeightKg float64 `json:"final_weight_kg" validate:"required,gt=0"`
}

func (r *SettleWagerRequest) Validate() error { return validate.Struct(r) }
