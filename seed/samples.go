package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"estate-cms/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{
			Title:            "Prestige Pallavaram Gardens",
			City:             "Chennai",
			Location:         "Pallavaram",
			Type:             models.ProjectTypeApartments,
			Status:           models.ProjectStatusOngoing,
			Configuration:    "2, 3 & 4 BHK Apartments",
			ShortDescription: "Luxury apartments in the heart of Chennai with world-class amenities.",
			LongDescription:  "2, 3 and 4 BHK apartments on 15 acres with a clubhouse, pool, gym and landscaped gardens, close to the airport and the IT parks.",
			MainImage:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?auto=format&fit=crop&w=1740&q=80",
			BannerImage:      "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?auto=format&fit=crop&w=1740&q=80",
			GalleryImages: datatypes.JSONSlice[string]{
				"https://images.unsplash.com/photo-1580587771525-78b9dba3b914?auto=format&fit=crop&w=1674&q=80",
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?auto=format&fit=crop&w=1740&q=80",
			},
			Price:         "₹75 Lakhs Onwards",
			StartingPrice: "₹75 Lakhs Onwards",
			Area:          "1200 - 2400 sq.ft.",
			Possession:    "December 2025",
			Amenities:     datatypes.JSONSlice[string]{"Clubhouse", "Swimming Pool", "Gymnasium", "Jogging Track", "24/7 Security"},
			Highlights:    datatypes.JSONSlice[string]{"15 acres of prime land", "Close to Chennai International Airport"},
			ReraNumber:    "TN/29/Building/001/2023",
			Featured:      true,
		},
		{
			Title:            "Prestige Lakeside Habitat",
			City:             "Bangalore",
			Location:         "Whitefield",
			Type:             models.ProjectTypeApartments,
			Status:           models.ProjectStatusOngoing,
			Configuration:    "1, 2, 3 & 4 BHK Apartments",
			ShortDescription: "Premium lake-facing apartments in Bangalore's IT hub.",
			LongDescription:  "Lake-view apartments across 102 acres in Whitefield with a 5-star clubhouse, retail spaces and large green areas.",
			MainImage:        "https://images.unsplash.com/photo-1580587771525-78b9dba3b914?auto=format&fit=crop&w=1674&q=80",
			BannerImage:      "https://images.unsplash.com/photo-1580587771525-78b9dba3b914?auto=format&fit=crop&w=1674&q=80",
			GalleryImages: datatypes.JSONSlice[string]{
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?auto=format&fit=crop&w=1740&q=80",
			},
			Price:         "₹65 Lakhs Onwards",
			StartingPrice: "₹65 Lakhs Onwards",
			Area:          "600 - 2200 sq.ft.",
			Possession:    "March 2025",
			Amenities:     datatypes.JSONSlice[string]{"5-star Clubhouse", "Swimming Pool", "Tennis Court", "Spa"},
			Highlights:    datatypes.JSONSlice[string]{"102 acres of development", "Lake-facing apartments"},
			ReraNumber:    "PRM/KA/RERA/1251/446/PR/180318/001598",
			Featured:      true,
		},
		{
			Title:            "Prestige West Woods",
			City:             "Bangalore",
			Location:         "Mysore Road",
			Type:             models.ProjectTypeApartments,
			Status:           models.ProjectStatusCompleted,
			Configuration:    "2 & 3 BHK Apartments",
			ShortDescription: "Modern apartments with contemporary architecture and premium amenities.",
			LongDescription:  "A completed development of 2 and 3 BHK apartments on Mysore Road with a clubhouse, pool and landscaped gardens.",
			MainImage:        "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?auto=format&fit=crop&w=1740&q=80",
			BannerImage:      "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?auto=format&fit=crop&w=1740&q=80",
			GalleryImages:    datatypes.JSONSlice[string]{},
			Price:            "₹85 Lakhs Onwards",
			StartingPrice:    "₹85 Lakhs Onwards",
			Area:             "1100 - 1800 sq.ft.",
			Possession:       "Ready to Move In",
			Amenities:        datatypes.JSONSlice[string]{"Clubhouse", "Swimming Pool", "Power Backup"},
			Highlights:       datatypes.JSONSlice[string]{"Ready to move in", "Prime location on Mysore Road"},
			ReraNumber:       "PRM/KA/RERA/1251/446/PR/180318/001599",
			Featured:         true,
		},
	}
}

func sampleBlogPosts(now time.Time) []models.BlogPost {
	return []models.BlogPost{
		{
			Title:            "Top 5 Reasons to Invest in Prestige Properties",
			ShortDescription: "Why Prestige is a trusted choice for real estate investment in India.",
			FullContent:      "<p>Three decades of delivery, prime locations, world-class amenities, quality construction and RERA-registered transparency.</p>",
			CoverImage:       "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?auto=format&fit=crop&w=1740&q=80",
			Date:             now,
		},
		{
			Title:            "The Future of Smart Homes: Prestige's Vision",
			ShortDescription: "How Prestige is bringing smart homes to India.",
			FullContent:      "<p>Home automation, energy management and modern security built into every new development.</p>",
			CoverImage:       "https://images.unsplash.com/photo-1580587771525-78b9dba3b914?auto=format&fit=crop&w=1674&q=80",
			Date:             now,
		},
		{
			Title:            "Interior Design Trends for 2024: Making Your Prestige Home Shine",
			ShortDescription: "The latest interior design trends for your Prestige home.",
			FullContent:      "<p>Biophilic design, warm minimalism, multifunctional rooms and sustainable materials.</p>",
			CoverImage:       "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?auto=format&fit=crop&w=1740&q=80",
			Date:             now,
		},
	}
}

// SampleData replaces every project and blog post with the sample set.
// The replacement runs in one transaction.
func SampleData(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Project{}).Error; err != nil {
			return fmt.Errorf("clearing projects: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.BlogPost{}).Error; err != nil {
			return fmt.Errorf("clearing blog posts: %w", err)
		}

		projects := sampleProjects()
		if err := tx.Create(&projects).Error; err != nil {
			return fmt.Errorf("inserting sample projects: %w", err)
		}
		log.Info().Int("count", len(projects)).Msg("sample projects created")

		posts := sampleBlogPosts(time.Now())
		if err := tx.Create(&posts).Error; err != nil {
			return fmt.Errorf("inserting sample blog posts: %w", err)
		}
		log.Info().Int("count", len(posts)).Msg("sample blog posts created")
		return nil
	})
}
