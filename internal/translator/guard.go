package translator

import (
	"context"
	"fmt"

	"github.com/valpere/civiclink/internal/placeholder"
	"github.com/valpere/civiclink/internal/validator"
)

// Protected hides URLs, e-mail addresses, HTML tags and code spans from the
// wrapped service behind [PHn] markers and restores them in the output. A
// translation that drops a marker is rejected.
type Protected struct {
	TranslationService
}

func NewProtected(svc TranslationService) *Protected {
	return &Protected{TranslationService: svc}
}

func (p *Protected) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	text, markers := placeholder.Protect(req.Text)
	if len(markers) == 0 {
		return p.TranslationService.Translate(ctx, req)
	}

	req.Text = text
	res, err := p.TranslationService.Translate(ctx, req)
	if err != nil || res == nil || res.Error != "" {
		return res, err
	}

	if missing := placeholder.Missing(res.TranslatedText, markers); len(missing) > 0 {
		err := fmt.Errorf("%s dropped %d of %d protected segment(s)", p.Name(), len(missing), len(markers))
		res.Error = err.Error()
		return res, err
	}
	res.TranslatedText = placeholder.Restore(res.TranslatedText, markers)
	return res, nil
}

func (p *Protected) Close() error {
	return closeInner(p.TranslationService)
}

// Validated rejects translations that the language detector attributes to a
// language other than the requested target.
type Validated struct {
	TranslationService
	validator *validator.Validator
}

func NewValidated(svc TranslationService, v *validator.Validator) *Validated {
	return &Validated{TranslationService: svc, validator: v}
}

func (v *Validated) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	res, err := v.TranslationService.Translate(ctx, req)
	if err != nil || res == nil || res.Error != "" {
		return res, err
	}

	if ok, verr := v.validator.IsValid(res.TranslatedText, req.TargetLang); !ok {
		err := fmt.Errorf("%s: output language check failed: %w", v.Name(), verr)
		res.Error = err.Error()
		return res, err
	}
	return res, nil
}

func (v *Validated) Close() error {
	return closeInner(v.TranslationService)
}

func closeInner(svc TranslationService) error {
	if c, ok := svc.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
