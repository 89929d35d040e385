package stats

import "bloglist/internal/models"

// TotalLikes sums the likes of every blog. An empty list sums to 0.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an
// empty list. On a tie the first maximal blog in input order wins, so
// the result is deterministic for a fixed input order.
func FavoriteBlog(blogs []models.Blog) *models.Blog {
	if len(blogs) == 0 {
		return nil
	}
	favorite := &blogs[0]
	for i := range blogs {
		if blogs[i].Likes > favorite.Likes {
			favorite = &blogs[i]
		}
	}
	return favorite
}
