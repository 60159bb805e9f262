package store

import (
	"context"
	"sort"
	"time"

	"trendpulse-backend/internal/models"
)

// CreateProject assigns the next project id, stamps timestamps and fills
// defaults for optional fields left unset (description nil, progress 0).
func (s *Store) CreateProject(ctx context.Context, ins models.InsertProject) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p := models.Project{
		ID:          s.nextProjectID,
		Title:       ins.Title,
		Description: cloneStringPtr(ins.Description),
		Status:      ins.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ins.Progress != nil {
		p.Progress = *ins.Progress
	}
	s.nextProjectID++
	s.projects[p.ID] = p

	return cloneProject(p)
}

// GetProjectByID reports ok=false when no project has that id; that is a
// normal outcome, not an error.
func (s *Store) GetProjectByID(ctx context.Context, id int) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, false
	}
	return cloneProject(p), true
}

// ListProjects returns all projects in creation (ascending id) order.
func (s *Store) ListProjects(ctx context.Context) []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, cloneProject(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateProject merges the non-nil fields of upd over the stored project
// and refreshes updatedAt. ID and createdAt never change.
func (s *Store) UpdateProject(ctx context.Context, id int, upd models.UpdateProject) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, false
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = cloneStringPtr(upd.Description)
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.Progress != nil {
		p.Progress = *upd.Progress
	}
	p.UpdatedAt = bumpedAfter(p.UpdatedAt)
	s.projects[id] = p

	return cloneProject(p), true
}

func cloneProject(p models.Project) models.Project {
	p.Description = cloneStringPtr(p.Description)
	return p
}
