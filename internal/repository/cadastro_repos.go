package repository

import (
	"context"

	"github.com/alencarrgabriel/GeradorRecibos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flat CRUD repositories for the registry entities printed on receipts.

type EmpresaRepository interface {
	Create(ctx context.Context, e *model.Empresa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Empresa, error)
	List(ctx context.Context) ([]model.Empresa, error)
	Update(ctx context.Context, e *model.Empresa) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type empresaRepo struct{ db *gorm.DB }

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository { return &empresaRepo{db: db} }

func (r *empresaRepo) Create(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empresaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *empresaRepo) List(ctx context.Context) ([]model.Empresa, error) {
	var empresas []model.Empresa
	err := r.db.WithContext(ctx).Where("ativa = true").Order("razao_social ASC").Find(&empresas).Error
	return empresas, err
}

func (r *empresaRepo) Update(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empresaRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Empresa{}).Where("id = ?", id).Update("ativa", false).Error
}

type ColaboradorRepository interface {
	Create(ctx context.Context, c *model.Colaborador) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Colaborador, error)
	List(ctx context.Context) ([]model.Colaborador, error)
	Update(ctx context.Context, c *model.Colaborador) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type colaboradorRepo struct{ db *gorm.DB }

func NewColaboradorRepository(db *gorm.DB) ColaboradorRepository { return &colaboradorRepo{db: db} }

func (r *colaboradorRepo) Create(ctx context.Context, c *model.Colaborador) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *colaboradorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Colaborador, error) {
	var c model.Colaborador
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *colaboradorRepo) List(ctx context.Context) ([]model.Colaborador, error) {
	var colaboradores []model.Colaborador
	err := r.db.WithContext(ctx).Where("ativo = true").Order("nome ASC").Find(&colaboradores).Error
	return colaboradores, err
}

func (r *colaboradorRepo) Update(ctx context.Context, c *model.Colaborador) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *colaboradorRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Colaborador{}).Where("id = ?", id).Update("ativo", false).Error
}

type PrestadorRepository interface {
	Create(ctx context.Context, p *model.Prestador) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Prestador, error)
	List(ctx context.Context) ([]model.Prestador, error)
	Update(ctx context.Context, p *model.Prestador) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type prestadorRepo struct{ db *gorm.DB }

func NewPrestadorRepository(db *gorm.DB) PrestadorRepository { return &prestadorRepo{db: db} }

func (r *prestadorRepo) Create(ctx context.Context, p *model.Prestador) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *prestadorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Prestador, error) {
	var p model.Prestador
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *prestadorRepo) List(ctx context.Context) ([]model.Prestador, error) {
	var prestadores []model.Prestador
	err := r.db.WithContext(ctx).Where("ativo = true").Order("nome ASC").Find(&prestadores).Error
	return prestadores, err
}

func (r *prestadorRepo) Update(ctx context.Context, p *model.Prestador) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *prestadorRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Prestador{}).Where("id = ?", id).Update("ativo", false).Error
}

type FornecedorRepository interface {
	Create(ctx context.Context, f *model.Fornecedor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Fornecedor, error)
	List(ctx context.Context) ([]model.Fornecedor, error)
	Update(ctx context.Context, f *model.Fornecedor) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type fornecedorRepo struct{ db *gorm.DB }

func NewFornecedorRepository(db *gorm.DB) FornecedorRepository { return &fornecedorRepo{db: db} }

func (r *fornecedorRepo) Create(ctx context.Context, f *model.Fornecedor) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fornecedorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Fornecedor, error) {
	var f model.Fornecedor
	err := r.db.WithContext(ctx).First(&f, id).Error
	return &f, err
}

func (r *fornecedorRepo) List(ctx context.Context) ([]model.Fornecedor, error) {
	var fornecedores []model.Fornecedor
	err := r.db.WithContext(ctx).Where("ativo = true").Order("nome ASC").Find(&fornecedores).Error
	return fornecedores, err
}

func (r *fornecedorRepo) Update(ctx context.Context, f *model.Fornecedor) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *fornecedorRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Fornecedor{}).Where("id = ?", id).Update("ativo", false).Error
}
