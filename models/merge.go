package models

// Merge functions implement the partial-update rule: a patch field wins iff
// it is explicitly present (non-nil pointer); otherwise the stored value is
// kept. Nothing here touches timestamps — the store advances UpdatedAt on
// every write.

func MergeTour(existing Tour, p TourPatch) Tour {
	out := existing
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Slug != nil {
		out.Slug = *p.Slug
	}
	if p.Excerpt != nil {
		out.Excerpt = *p.Excerpt
	}
	if p.Body != nil {
		out.Body = *p.Body
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Duration != nil {
		out.Duration = *p.Duration
	}
	if p.MainImage != nil {
		out.MainImage = *p.MainImage
	}
	if p.MainImageAlt != nil {
		out.MainImageAlt = *p.MainImageAlt
	}
	if p.Pricing != nil {
		out.Pricing = p.Pricing
	}
	if p.GroupSize != nil {
		out.GroupSize = p.GroupSize
	}
	if p.Inclusions != nil {
		out.Inclusions = *p.Inclusions
	}
	if p.Exclusions != nil {
		out.Exclusions = *p.Exclusions
	}
	if p.Itinerary != nil {
		out.Itinerary = *p.Itinerary
	}
	if p.SafetyInfo != nil {
		out.SafetyInfo = p.SafetyInfo
	}
	if p.AvailableDates != nil {
		out.AvailableDates = *p.AvailableDates
	}
	if p.Tags != nil {
		out.Tags = *p.Tags
	}
	if p.PublishedAt != nil {
		out.PublishedAt = p.PublishedAt
	}
	return out
}

func MergeBlogPost(existing BlogPost, p BlogPostPatch) BlogPost {
	out := existing
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Slug != nil {
		out.Slug = *p.Slug
	}
	if p.Excerpt != nil {
		out.Excerpt = *p.Excerpt
	}
	if p.Body != nil {
		out.Body = *p.Body
	}
	if p.MainImage != nil {
		out.MainImage = *p.MainImage
	}
	if p.MainImageAlt != nil {
		out.MainImageAlt = *p.MainImageAlt
	}
	if p.PublishedAt != nil {
		out.PublishedAt = p.PublishedAt
	}
	return out
}

func MergeGalleryImage(existing GalleryImage, p GalleryImagePatch) GalleryImage {
	out := existing
	if p.Image != nil {
		out.Image = *p.Image
	}
	if p.Alt != nil {
		out.Alt = *p.Alt
	}
	if p.Caption != nil {
		out.Caption = *p.Caption
	}
	if p.TourID != nil {
		out.TourID = *p.TourID
	}
	if p.Tags != nil {
		out.Tags = *p.Tags
	}
	if p.PublishedAt != nil {
		out.PublishedAt = p.PublishedAt
	}
	return out
}

func MergeTestimonial(existing Testimonial, p TestimonialPatch) Testimonial {
	out := existing
	if p.CustomerName != nil {
		out.CustomerName = *p.CustomerName
	}
	if p.CustomerPhoto != nil {
		out.CustomerPhoto = *p.CustomerPhoto
	}
	if p.Quote != nil {
		out.Quote = *p.Quote
	}
	if p.Rating != nil {
		out.Rating = *p.Rating
	}
	if p.TourID != nil {
		out.TourID = *p.TourID
	}
	if p.PublishedAt != nil {
		out.PublishedAt = p.PublishedAt
	}
	return out
}
