// Package seed fills a fresh database with the default pages and with
// sample content for demos.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"estate-cms/models"
	"estate-cms/repositories"
)

// DefaultPages is the initial copy of every fixed page.
var DefaultPages = []models.Page{
	{
		Name:  models.PageHome,
		Title: "Welcome to EcoMom - Sustainable Real Estate",
		Content: datatypes.JSONMap{
			"heroTitle":                "Sustainable Living Spaces",
			"heroSubtitle":             "Eco-friendly homes for a better tomorrow",
			"heroImage":                "/img/hero-image.jpg",
			"featuredProjectsTitle":    "Featured Projects",
			"aboutSectionTitle":        "About EcoMom",
			"aboutSectionContent":      "<p>EcoMom builds sustainable homes that pair modern comfort with respect for nature.</p>",
			"testimonialsSectionTitle": "What Our Clients Say",
		},
		MetaDescription: "EcoMom - Sustainable real estate development company specializing in eco-friendly homes and apartments.",
	},
	{
		Name:  models.PageAbout,
		Title: "About Us - EcoMom",
		Content: datatypes.JSONMap{
			"mainHeading":      "Our Story",
			"mainContent":      "<p>Since 2010 EcoMom has developed homes that are comfortable, beautiful and environmentally responsible.</p>",
			"teamSectionTitle": "Meet Our Team",
			"missionStatement": "<p>Make sustainability the standard in real estate, not the exception.</p>",
			"visionStatement":  "<p>Every home should give back to the environment it stands in.</p>",
		},
		MetaDescription: "Learn about EcoMom's journey, mission, and vision in sustainable real estate development.",
	},
	{
		Name:  models.PageContact,
		Title: "Contact Us - EcoMom",
		Content: datatypes.JSONMap{
			"mainHeading": "Get in Touch",
			"introText":   "<p>Questions about a project or about sustainable living? Our team is happy to help.</p>",
			"address":     "123 Green Street, Eco City, EC 12345",
			"phone":       "+1 (555) 123-4567",
			"email":       "info@ecomom.com",
		},
		MetaDescription: "Contact EcoMom for inquiries about our sustainable real estate projects or to schedule a visit.",
	},
	{
		Name:  models.PageProjects,
		Title: "Our Projects - EcoMom",
		Content: datatypes.JSONMap{
			"mainHeading": "Sustainable Living Projects",
			"introText":   "<p>Explore our eco-friendly residential and commercial developments.</p>",
		},
		MetaDescription: "Browse EcoMom's portfolio of sustainable real estate projects, featuring eco-friendly homes and commercial spaces.",
	},
	{
		Name:  models.PageBlog,
		Title: "Blog - EcoMom",
		Content: datatypes.JSONMap{
			"mainHeading": "Sustainable Living Insights",
			"introText":   "<p>News on green building, sustainable living and eco-friendly interiors.</p>",
		},
		MetaDescription: "Read EcoMom's blog for insights on sustainable living, green building practices, and eco-friendly interior design.",
	},
}

// InitPages creates every default page that does not exist yet. Existing
// pages are left alone. It returns the names of the pages it created.
func InitPages(ctx context.Context, pages repositories.PageRepository, log zerolog.Logger) ([]models.PageName, error) {
	created := []models.PageName{}
	for _, def := range DefaultPages {
		_, err := pages.GetByName(ctx, def.Name)
		if err == nil {
			log.Info().Str("page", string(def.Name)).Msg("page already exists")
			continue
		}
		var notFound models.ErrorNotFound
		if !errors.As(err, &notFound) {
			return created, err
		}

		page := def
		page.Content = copyContent(def.Content)
		page.LastUpdated = time.Now()
		if err := pages.Create(ctx, &page); err != nil {
			return created, err
		}
		log.Info().Str("page", string(def.Name)).Msg("created default page")
		created = append(created, def.Name)
	}
	return created, nil
}

func copyContent(src datatypes.JSONMap) datatypes.JSONMap {
	dst := make(datatypes.JSONMap, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
