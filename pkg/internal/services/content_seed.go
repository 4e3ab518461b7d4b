package services

import "github.com/ideax-social/feedcore/pkg/internal/models"

// SeedPosts returns a fresh copy of the fixed fallback dataset served
// whenever content generation is unavailable. Callers may mutate the
// result freely.
func SeedPosts() []models.Post {
	return []models.Post{
		{
			ID: "fallback-1",
			Author: models.User{
				ID:             "user1",
				Username:       "fallback_dev",
				DisplayName:    "Fallback Developer",
				AvatarURL:      "https://i.pravatar.cc/150?u=fallback1",
				Bio:            "Building resilient applications.",
				FollowerCount:  1337,
				FollowingCount: 42,
				PostCount:      1,
				Highlights: []models.Highlight{
					{ID: "h1", Title: "Code", CoverURL: "https://picsum.photos/200?random=1"},
				},
			},
			Type:    models.PostTypeProblem,
			Title:   "API Content Unavailable",
			Summary: "The dynamic content could not be loaded from the API. This is fallback data to ensure the application remains functional. The main cause is often a missing or invalid API key.",
			Content: "This is a fallback post because the connection to the content generation API failed. This could be due to several reasons:\n\n*   **Invalid API Key**: The generator API key is either missing or incorrect.\n*   **Network Issues**: There might be a problem connecting to the API services.\n*   **API Timeout**: The request to the service took too long to respond.\n\nThis fallback mechanism ensures that the application remains usable even when the primary content source is unavailable.",
			Tags:       []string{"error", "fallback", "resilience"},
			Industries: []string{"Software Development"},
			Stage:      models.StageLaunched,
			Language:   "en",
			CoverMedia: &models.Media{Type: models.MediaTypeImage, URL: "https://picsum.photos/seed/1/1080/1350"},
			Stats:      models.PostStats{Likes: 42, Comments: 5, Saves: 10, Shares: 2},
		},
		{
			ID: "fallback-2",
			Author: models.User{
				ID:             "user2",
				Username:       "annas_saas",
				DisplayName:    "Anna Thiel",
				AvatarURL:      "https://i.pravatar.cc/150?u=anna",
				Bio:            "Founder @SaaSBuilder | Helping bootstrappers scale",
				FollowerCount:  24500,
				FollowingCount: 150,
				PostCount:      34,
				Highlights: []models.Highlight{
					{ID: "h2", Title: "Growth", CoverURL: "https://picsum.photos/200?random=2"},
					{ID: "h3", Title: "My SaaS", CoverURL: "https://picsum.photos/200?random=3"},
				},
			},
			Type:    models.PostTypeIdea,
			Title:   "AI-Powered Email Assistant for Busy Founders",
			Summary: "A tool that categorizes incoming emails by priority, drafts replies for common queries, and summarizes long threads to save hours each day.",
			Content: "### The Problem\n\nFounders and entrepreneurs are constantly drowning in emails. Important conversations get lost, opportunities are missed, and countless hours are wasted on managing an overflowing inbox.\n\n### My Idea\n\nAn AI-powered email assistant that integrates with your existing email and intelligently prioritizes, drafts replies for common questions, and provides TL;DR summaries for long email chains.\n\nWhat do you think? Would this be a valuable tool for your workflow?",
			Tags:       []string{"ai", "productivity", "saas", "startup"},
			Industries: []string{"Software"},
			Stage:      models.StagePrototype,
			Language:   "en",
			IsReel:     true,
			CoverMedia: &models.Media{
				Type:      models.MediaTypeVideo,
				URL:       "https://videos.pexels.com/video-files/4434246/4434246-hd_720_1280_25fps.mp4",
				Thumbnail: "https://picsum.photos/seed/fb2/1080/1920",
			},
			Stats: models.PostStats{Likes: 4200, Comments: 153, Saves: 890, Shares: 72},
		},
		{
			ID: "fallback-3",
			Author: models.User{
				ID:             "user3",
				Username:       "fintech_guru",
				DisplayName:    "Chris Romano",
				AvatarURL:      "https://i.pravatar.cc/150?u=chris",
				Bio:            "Democratizing financial knowledge for all.",
				FollowerCount:  48000,
				FollowingCount: 89,
				PostCount:      52,
				Highlights: []models.Highlight{
					{ID: "h4", Title: "Investing", CoverURL: "https://picsum.photos/200?random=4"},
					{ID: "h5", Title: "Fintech", CoverURL: "https://picsum.photos/200?random=5"},
					{ID: "h6", Title: "Live Events", CoverURL: "https://picsum.photos/200?random=6"},
				},
			},
			Type:    models.PostTypeSolution,
			Title:   "\"FinWise\": A Gamified Financial Literacy App for Gen Z",
			Summary: "We just launched an app that uses short-form video and interactive challenges to teach budgeting, investing, and credit scores. Early feedback is amazing!",
			Content: "I'm thrilled to announce the launch of **FinWise**!\n\nYoung people find personal finance intimidating and boring, and traditional resources don't speak their language.\n\n### Our Solution\n\n*   **Gamified Learning**: points, badges and leaderboards for complex topics like investing and credit scores.\n*   **Bite-Sized Content**: lessons in a short-form, vertical video format.\n*   **Interactive Challenges**: weekly challenges that build practical skills.\n\nThe response from our beta testers has been incredible. We're officially live on the App Store and Google Play!",
			Tags:       []string{"fintech", "mobile-app", "education", "gamification"},
			Industries: []string{"FinTech", "EdTech"},
			Stage:      models.StageLaunched,
			Language:   "en",
			IsReel:     true,
			CoverMedia: &models.Media{
				Type:      models.MediaTypeVideo,
				URL:       "https://videos.pexels.com/video-files/4690333/4690333-hd_720_1280_25fps.mp4",
				Thumbnail: "https://picsum.photos/seed/fb3/1080/1920",
			},
			Stats: models.PostStats{Likes: 8932, Comments: 432, Saves: 1500, Shares: 210},
		},
		{
			ID: "fallback-4",
			Author: models.User{
				ID:             "user4",
				Username:       "creator_code",
				DisplayName:    "Jenna",
				AvatarURL:      "https://i.pravatar.cc/150?u=jenna",
				Bio:            "Building in public. Creator Economy tools.",
				FollowerCount:  12000,
				FollowingCount: 300,
				PostCount:      78,
			},
			Type:    models.PostTypeShowcase,
			Title:   "Just shipped a new feature for my video editing SaaS!",
			Summary: "You can now automatically generate subtitles and captions for your videos in over 20 languages. This was a beast to build, but so worth it for accessibility.",
			Content: "## Feature Drop: Auto-Captions are LIVE!\n\nAfter months of work, our video editing platform now supports automatic subtitle and caption generation.\n\n**Key features:**\n\n*   **High Accuracy**: powered by the latest speech-to-text models.\n*   **Multi-Language Support**: transcribe and translate into over 20 languages.\n*   **Customizable Styles**: match your captions to your brand.\n\nGo try it out and let me know what you think!",
			Tags:       []string{"saas", "video-editing", "accessibility", "creator-economy"},
			Industries: []string{"Creator Economy"},
			Stage:      models.StageLaunched,
			Language:   "en",
			IsReel:     true,
			CoverMedia: &models.Media{
				Type:      models.MediaTypeVideo,
				URL:       "https://videos.pexels.com/video-files/8130177/8130177-hd_720_1280_25fps.mp4",
				Thumbnail: "https://picsum.photos/seed/fb4/1080/1920",
			},
			Stats: models.PostStats{Likes: 5600, Comments: 210, Saves: 1100, Shares: 95},
		},
		{
			ID: "fallback-5",
			Author: models.User{
				ID:             "user5",
				Username:       "healthtech_hustler",
				DisplayName:    "David Chen",
				AvatarURL:      "https://i.pravatar.cc/150?u=david",
				Bio:            "Improving patient outcomes with technology.",
				FollowerCount:  8500,
				FollowingCount: 210,
				PostCount:      45,
			},
			Type:    models.PostTypeProblem,
			Title:   "Mental health support for startup founders is broken",
			Summary: "The immense pressure and isolation of building a company leads to burnout, but existing solutions are expensive and not tailored to the founder journey.",
			Content: "Let's talk about a serious problem: founder mental health. We glorify the hustle, but we ignore the cost. The constant stress, the loneliness, the weight of responsibility is a recipe for burnout.\n\nFinding a therapist who understands the unique pressures of startup life is incredibly difficult, expensive and time-consuming. We need a solution that's accessible, affordable, and designed for entrepreneurs.",
			Tags:       []string{"mental-health", "founder-wellbeing", "healthtech", "startup-life"},
			Industries: []string{"HealthTech"},
			Stage:      models.StageIdea,
			Language:   "en",
			CoverMedia: &models.Media{Type: models.MediaTypeImage, URL: "https://picsum.photos/seed/2/1080/1080"},
			Stats:      models.PostStats{Likes: 7200, Comments: 350, Saves: 1800, Shares: 150},
		},
	}
}
