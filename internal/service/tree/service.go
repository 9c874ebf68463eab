package tree

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Navii02/pods-pidBackend/internal/model"
	"github.com/Navii02/pods-pidBackend/internal/repository"
)

// ErrDuplicateCode 区域 / 专业 / 系统代码已存在
var ErrDuplicateCode = errors.New("code already exists")

// ErrDuplicateNode 完全相同的树路径行已存在
var ErrDuplicateNode = errors.New("tree node already exists")

// Service 层级目录服务：区域 → 专业 → 系统 → 标签
type Service struct {
	repo *repository.Repositories
}

// NewService 创建层级目录服务
func NewService(repo *repository.Repositories) *Service {
	return &Service{repo: repo}
}

// AddEntityRequest 创建区域 / 专业 / 系统的请求
type AddEntityRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	Code      string `json:"code" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// UpdateEntityRequest 更新区域 / 专业 / 系统的请求
type UpdateEntityRequest struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
}

// ========== 区域 ==========

// AddArea 创建区域，区域代码全局唯一
func (s *Service) AddArea(ctx context.Context, req *AddEntityRequest) (*model.Area, error) {
	if _, err := s.repo.Tree.GetAreaByCode(ctx, req.Code); err == nil {
		return nil, ErrDuplicateCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check area code: %w", err)
	}
	area := &model.Area{
		AreaID:    model.NewID("A-"),
		Area:      req.Code,
		Name:      req.Name,
		ProjectID: req.ProjectID,
	}
	if err := s.repo.Tree.CreateArea(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to create area: %w", err)
	}
	return area, nil
}

// ListAreas 获取项目下的所有区域
func (s *Service) ListAreas(ctx context.Context, projectID string) ([]*model.Area, error) {
	areas, err := s.repo.Tree.ListAreasByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return areas, nil
}

// UpdateArea 更新区域，改代码会同步树路径
func (s *Service) UpdateArea(ctx context.Context, areaID string, req *UpdateEntityRequest) (*model.Area, error) {
	areas, err := s.findArea(ctx, areaID)
	if err != nil {
		return nil, err
	}
	oldCode := areas.Area
	if req.Code != nil && *req.Code != areas.Area {
		if existing, err := s.repo.Tree.GetAreaByCode(ctx, *req.Code); err == nil && existing.AreaID != areaID {
			return nil, ErrDuplicateCode
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check area code: %w", err)
		}
		areas.Area = *req.Code
	}
	if req.Name != nil {
		areas.Name = *req.Name
	}
	if err := s.repo.Tree.UpdateArea(ctx, areas); err != nil {
		return nil, fmt.Errorf("failed to update area: %w", err)
	}
	if areas.Area != oldCode {
		if err := s.repo.Tree.RenameNodeLevel(ctx, areas.ProjectID, "area", oldCode, areas.Area); err != nil {
			return nil, fmt.Errorf("failed to sync tree nodes: %w", err)
		}
	}
	return areas, nil
}

// DeleteArea 删除区域及其下的所有树路径
func (s *Service) DeleteArea(ctx context.Context, areaID string) error {
	area, err := s.findArea(ctx, areaID)
	if err != nil {
		return err
	}
	if err := s.repo.Tree.DeleteNodes(ctx, area.ProjectID, &area.Area, nil, nil); err != nil {
		return fmt.Errorf("failed to delete tree nodes: %w", err)
	}
	if err := s.repo.Tree.DeleteArea(ctx, areaID); err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	return nil
}

func (s *Service) findArea(ctx context.Context, areaID string) (*model.Area, error) {
	area, err := s.repo.Tree.GetArea(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("area not found: %w", err)
	}
	return area, nil
}

// ========== 专业 ==========

// AddDiscipline 创建专业，专业代码全局唯一
func (s *Service) AddDiscipline(ctx context.Context, req *AddEntityRequest) (*model.Discipline, error) {
	if _, err := s.repo.Tree.GetDisciplineByCode(ctx, req.Code); err == nil {
		return nil, ErrDuplicateCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check discipline code: %w", err)
	}
	disc := &model.Discipline{
		DiscID:    model.NewID("D-"),
		Disc:      req.Code,
		Name:      req.Name,
		ProjectID: req.ProjectID,
	}
	if err := s.repo.Tree.CreateDiscipline(ctx, disc); err != nil {
		return nil, fmt.Errorf("failed to create discipline: %w", err)
	}
	return disc, nil
}

// ListDisciplines 获取项目下的所有专业
func (s *Service) ListDisciplines(ctx context.Context, projectID string) ([]*model.Discipline, error) {
	discs, err := s.repo.Tree.ListDisciplinesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list disciplines: %w", err)
	}
	return discs, nil
}

// UpdateDiscipline 更新专业，改代码会同步树路径
func (s *Service) UpdateDiscipline(ctx context.Context, discID string, req *UpdateEntityRequest) (*model.Discipline, error) {
	disc, err := s.findDiscipline(ctx, discID)
	if err != nil {
		return nil, err
	}
	oldCode := disc.Disc
	if req.Code != nil && *req.Code != disc.Disc {
		if existing, err := s.repo.Tree.GetDisciplineByCode(ctx, *req.Code); err == nil && existing.DiscID != discID {
			return nil, ErrDuplicateCode
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check discipline code: %w", err)
		}
		disc.Disc = *req.Code
	}
	if req.Name != nil {
		disc.Name = *req.Name
	}
	if err := s.repo.Tree.UpdateDiscipline(ctx, disc); err != nil {
		return nil, fmt.Errorf("failed to update discipline: %w", err)
	}
	if disc.Disc != oldCode {
		if err := s.repo.Tree.RenameNodeLevel(ctx, disc.ProjectID, "disc", oldCode, disc.Disc); err != nil {
			return nil, fmt.Errorf("failed to sync tree nodes: %w", err)
		}
	}
	return disc, nil
}

// DeleteDiscipline 删除专业及其下的所有树路径
func (s *Service) DeleteDiscipline(ctx context.Context, discID string) error {
	disc, err := s.findDiscipline(ctx, discID)
	if err != nil {
		return err
	}
	if err := s.repo.Tree.DeleteNodes(ctx, disc.ProjectID, nil, &disc.Disc, nil); err != nil {
		return fmt.Errorf("failed to delete tree nodes: %w", err)
	}
	if err := s.repo.Tree.DeleteDiscipline(ctx, discID); err != nil {
		return fmt.Errorf("failed to delete discipline: %w", err)
	}
	return nil
}

func (s *Service) findDiscipline(ctx context.Context, discID string) (*model.Discipline, error) {
	disc, err := s.repo.Tree.GetDiscipline(ctx, discID)
	if err != nil {
		return nil, fmt.Errorf("discipline not found: %w", err)
	}
	return disc, nil
}

// ========== 系统 ==========

// AddSystem 创建系统，系统代码全局唯一
func (s *Service) AddSystem(ctx context.Context, req *AddEntityRequest) (*model.System, error) {
	if _, err := s.repo.Tree.GetSystemByCode(ctx, req.Code); err == nil {
		return nil, ErrDuplicateCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check system code: %w", err)
	}
	sys := &model.System{
		SysID:     model.NewID("S-"),
		Sys:       req.Code,
		Name:      req.Name,
		ProjectID: req.ProjectID,
	}
	if err := s.repo.Tree.CreateSystem(ctx, sys); err != nil {
		return nil, fmt.Errorf("failed to create system: %w", err)
	}
	return sys, nil
}

// ListSystems 获取项目下的所有系统
func (s *Service) ListSystems(ctx context.Context, projectID string) ([]*model.System, error) {
	syss, err := s.repo.Tree.ListSystemsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list systems: %w", err)
	}
	return syss, nil
}

// UpdateSystem 更新系统，改代码会同步树路径
func (s *Service) UpdateSystem(ctx context.Context, sysID string, req *UpdateEntityRequest) (*model.System, error) {
	sys, err := s.findSystem(ctx, sysID)
	if err != nil {
		return nil, err
	}
	oldCode := sys.Sys
	if req.Code != nil && *req.Code != sys.Sys {
		if existing, err := s.repo.Tree.GetSystemByCode(ctx, *req.Code); err == nil && existing.SysID != sysID {
			return nil, ErrDuplicateCode
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check system code: %w", err)
		}
		sys.Sys = *req.Code
	}
	if req.Name != nil {
		sys.Name = *req.Name
	}
	if err := s.repo.Tree.UpdateSystem(ctx, sys); err != nil {
		return nil, fmt.Errorf("failed to update system: %w", err)
	}
	if sys.Sys != oldCode {
		if err := s.repo.Tree.RenameNodeLevel(ctx, sys.ProjectID, "sys", oldCode, sys.Sys); err != nil {
			return nil, fmt.Errorf("failed to sync tree nodes: %w", err)
		}
	}
	return sys, nil
}

// DeleteSystem 删除系统及其下的所有树路径
func (s *Service) DeleteSystem(ctx context.Context, sysID string) error {
	sys, err := s.findSystem(ctx, sysID)
	if err != nil {
		return err
	}
	if err := s.repo.Tree.DeleteNodes(ctx, sys.ProjectID, nil, nil, &sys.Sys); err != nil {
		return fmt.Errorf("failed to delete tree nodes: %w", err)
	}
	if err := s.repo.Tree.DeleteSystem(ctx, sysID); err != nil {
		return fmt.Errorf("failed to delete system: %w", err)
	}
	return nil
}

func (s *Service) findSystem(ctx context.Context, sysID string) (*model.System, error) {
	sys, err := s.repo.Tree.GetSystem(ctx, sysID)
	if err != nil {
		return nil, fmt.Errorf("system not found: %w", err)
	}
	return sys, nil
}

// ========== 树路径 ==========

// AddNodeRequest 创建树路径行的请求
type AddNodeRequest struct {
	ProjectID string  `json:"projectId" binding:"required"`
	Area      *string `json:"area"`
	Disc      *string `json:"disc"`
	Sys       *string `json:"sys"`
	Tag       *string `json:"tag"`
	Name      *string `json:"name"`
}

// AddNode 创建树路径行，完全相同的路径不重复落库
func (s *Service) AddNode(ctx context.Context, req *AddNodeRequest) (*model.TreeNode, error) {
	node := &model.TreeNode{
		Area:      req.Area,
		Disc:      req.Disc,
		Sys:       req.Sys,
		Tag:       req.Tag,
		Name:      req.Name,
		ProjectID: req.ProjectID,
	}
	exists, err := s.repo.Tree.NodeExists(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("failed to check tree node: %w", err)
	}
	if exists {
		return nil, ErrDuplicateNode
	}
	if err := s.repo.Tree.CreateNode(ctx, node); err != nil {
		return nil, fmt.Errorf("failed to create tree node: %w", err)
	}
	return node, nil
}

// GetTree 获取项目的全部树路径行，前端组装成树
func (s *Service) GetTree(ctx context.Context, projectID string) ([]*model.TreeNode, error) {
	nodes, err := s.repo.Tree.ListNodesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tree nodes: %w", err)
	}
	return nodes, nil
}

// DeleteBranch 按路径代码删除树分支
// code 形如 "A01" / "A01__D02" / "A01__D02__S03"，层级用双下划线分隔
func (s *Service) DeleteBranch(ctx context.Context, projectID, code string) error {
	parts := strings.Split(code, "__")
	if len(parts) == 0 || len(parts) > 3 {
		return fmt.Errorf("invalid branch code %q", code)
	}
	var area, disc, sys *string
	area = &parts[0]
	if len(parts) > 1 {
		disc = &parts[1]
	}
	if len(parts) > 2 {
		sys = &parts[2]
	}
	if err := s.repo.Tree.DeleteNodes(ctx, projectID, area, disc, sys); err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	return nil
}
