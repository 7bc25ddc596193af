package repository

import (
	"context"
	"fmt"

	"github.com/portfolio-site/portfolio-backend/internal/projects/domain"
)

// Creator is the part of a project store that Seed needs.
type Creator interface {
	Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error)
}

// Seed inserts projects in order, stopping at the first failure.
func Seed(ctx context.Context, store Creator, seed []domain.CreateProjectRequest) error {
	for i, req := range seed {
		if _, err := store.Create(ctx, req); err != nil {
			return fmt.Errorf("seed project %d (%q): %w", i, req.Title, err)
		}
	}
	return nil
}

// DefaultProjects is the fixed list the site starts with.
func DefaultProjects() []domain.CreateProjectRequest {
	return []domain.CreateProjectRequest{
		seedProject("E-Commerce Platform",
			"Modern shopping platform with React, Node.js, and Stripe integration",
			"photo-1556742049-0cfed4f6a45d", "ecommerce", true,
			"React", "Node.js", "Stripe", "MongoDB"),
		seedProject("Task Management App",
			"Collaborative task management with real-time updates and team features",
			"photo-1611224923853-80b023f02d71", "tasks", true,
			"Vue.js", "Firebase", "Socket.io"),
		seedProject("Analytics Dashboard",
			"Data visualization platform with interactive charts and reporting",
			"photo-1551288049-bebda4e38f71", "analytics", true,
			"D3.js", "Python", "PostgreSQL"),
		seedProject("Social Media Dashboard",
			"Unified social media management platform with analytics and scheduling",
			"photo-1611262588024-d12430b98920", "social", false,
			"React", "TypeScript", "Node.js", "Redis"),
		seedProject("Weather App",
			"Real-time weather application with location-based forecasts and alerts",
			"photo-1504608524841-42fe6f032b4b", "weather", false,
			"React Native", "OpenWeather API", "SQLite"),
		seedProject("Portfolio Website",
			"Responsive portfolio website with modern design and animations",
			"photo-1467232004584-a241de8bcf5d", "portfolio", false,
			"Next.js", "Tailwind CSS", "Framer Motion"),
		seedProject("Restaurant Management System",
			"Complete restaurant management with order tracking and inventory",
			"photo-1514933651103-005eec06c04b", "restaurant", false,
			"Angular", "Express.js", "MySQL", "Socket.io"),
		seedProject("Learning Management System",
			"Educational platform with course management and progress tracking",
			"photo-1522202176988-66273c2fd55f", "lms", false,
			"Vue.js", "Django", "PostgreSQL", "AWS S3"),
		seedProject("Fitness Tracker",
			"Personal fitness tracking app with workout plans and progress monitoring",
			"photo-1571019613454-1cb2f99b2d8b", "fitness", false,
			"React Native", "Firebase", "Chart.js"),
	}
}

func seedProject(title, description, photo, slug string, featured bool, tech ...string) domain.CreateProjectRequest {
	image := fmt.Sprintf("https://images.unsplash.com/%s?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400", photo)
	live := fmt.Sprintf("https://example-%s.com", slug)
	github := fmt.Sprintf("https://github.com/example/%s", slug)
	return domain.CreateProjectRequest{
		Title:        title,
		Description:  description,
		Image:        image,
		Technologies: tech,
		LiveURL:      &live,
		GithubURL:    &github,
		Featured:     &featured,
	}
}
