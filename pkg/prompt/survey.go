package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

type surveyDriver struct{}

// NewSurveyDriver constructs the production Driver backed by survey
// prompts on the calling terminal.
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return cfg.Validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Password{
		Message: cfg.Message,
		Help:    cfg.Help,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return cfg.Validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Confirm asks through a validated text input rather than survey.Confirm
// so the full yes/no token set (1/true/t/yes/y/on and friends) is
// accepted; survey's validator loop re-asks on anything else.
func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: FormatYesNo(cfg.Default),
	}
	validate := survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		_, err := ParseYesNo(s)
		return err
	})
	if err := survey.AskOne(prompt, &out, validate); err != nil {
		return false, translateSurveyErr(err)
	}
	return ParseYesNo(out)
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(cfg.Options) == 0 {
		return 0, ErrEmptyChoices
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return indexOf(cfg.Options, out), nil
}

// JSONObject asks for a JSON object override. An empty answer keeps the
// default; otherwise the answer must decode to an object, retried by the
// validator loop until it does.
func (d *surveyDriver) JSONObject(ctx context.Context, cfg JSONConfig) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message + " (default)",
		Help:    cfg.Help,
	}
	validate := survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		if s == "" {
			return nil
		}
		_, err := ParseJSONObject(s)
		return err
	})
	if err := survey.AskOne(prompt, &out, validate); err != nil {
		return nil, translateSurveyErr(err)
	}
	if out == "" {
		return cfg.Default, nil
	}
	return ParseJSONObject(out)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
