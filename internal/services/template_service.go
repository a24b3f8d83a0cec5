package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/easyevent/server/internal/models"
)

type TemplateService struct {
	templatesRepo models.TemplatesRepo
}

func NewTemplateService(templatesRepo models.TemplatesRepo) *TemplateService {
	return &TemplateService{
		templatesRepo: templatesRepo,
	}
}

func (ts *TemplateService) CreateTemplate(ctx context.Context, req *models.CreateTemplateRequest, ownerId string) (*models.AgreementTemplate, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid template data provided: %v", err)
	}
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, models.ErrNotFound
	}

	tpl := &models.AgreementTemplate{
		OwnerID:   oid,
		Title:     req.Title,
		Body:      req.Body,
		IsDefault: req.IsDefault,
	}
	return ts.templatesRepo.CreateTemplate(ctx, tpl)
}

func (ts *TemplateService) ListTemplates(ctx context.Context, ownerId string) ([]*models.AgreementTemplate, error) {
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return ts.templatesRepo.ListTemplatesByOwner(ctx, oid)
}

func (ts *TemplateService) UpdateTemplate(ctx context.Context, templateId, ownerId string, req *models.UpdateTemplateRequest) (*models.AgreementTemplate, error) {
	tpl, err := ts.requireTemplateOwnership(ctx, templateId, ownerId)
	if err != nil {
		return nil, err
	}

	update := bson.M{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("title cannot be empty")
		}
		update["title"] = *req.Title
	}
	if req.Body != nil {
		if *req.Body == "" {
			return nil, fmt.Errorf("body cannot be empty")
		}
		update["body"] = *req.Body
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	return ts.templatesRepo.UpdateTemplate(ctx, tpl.ID, update)
}

func (ts *TemplateService) SetDefaultTemplate(ctx context.Context, templateId, ownerId string) (*models.AgreementTemplate, error) {
	tpl, err := ts.requireTemplateOwnership(ctx, templateId, ownerId)
	if err != nil {
		return nil, err
	}
	oid, _ := models.ParseObjectID(ownerId)
	return ts.templatesRepo.SetDefaultTemplate(ctx, oid, tpl.ID)
}

func (ts *TemplateService) DeleteTemplate(ctx context.Context, templateId, ownerId string) error {
	tpl, err := ts.requireTemplateOwnership(ctx, templateId, ownerId)
	if err != nil {
		return err
	}
	return ts.templatesRepo.DeleteTemplate(ctx, tpl.ID)
}

func (ts *TemplateService) requireTemplateOwnership(ctx context.Context, templateId, ownerId string) (*models.AgreementTemplate, error) {
	tid, err := models.ParseObjectID(templateId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, models.ErrNotFound
	}

	tpl, err := ts.templatesRepo.GetTemplateByID(ctx, tid)
	if err != nil {
		return nil, err
	}
	if tpl.OwnerID != oid {
		return nil, models.ErrNotFound
	}
	return tpl, nil
}
