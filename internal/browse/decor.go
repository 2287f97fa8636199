package browse

// Decorative imagery around the list. None of it interacts with fetch state.
var (
	CarouselSlides = []string{
		"/banners/carousel1.jpg",
		"/banners/carousel2.jpg",
		"/banners/carousel3.jpg",
	}

	TopBanners     = []string{"/banners/banner1.jpg", "/banners/banner2.jpg"}
	LeftSidePanel  = "/side-panels/left.jpg"
	RightSidePanel = "/side-panels/right.jpg"
)
