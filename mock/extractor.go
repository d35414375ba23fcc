package mock

import "github.com/fwojciec/pricetag"

var _ pricetag.SiteExtractor = (*SiteExtractor)(nil)

// SiteExtractor is a mock implementation of pricetag.SiteExtractor.
type SiteExtractor struct {
	ExtractFn func(html string, pageURL string) (*pricetag.Result, error)
	NameFn    func() string
}

func (e *SiteExtractor) Extract(html string, pageURL string) (*pricetag.Result, error) {
	return e.ExtractFn(html, pageURL)
}

func (e *SiteExtractor) Name() string {
	if e.NameFn == nil {
		return "mock"
	}
	return e.NameFn()
}

var _ pricetag.Router = (*Router)(nil)

// Router is a mock implementation of pricetag.Router.
type Router struct {
	RouteFn func(pageURL string) pricetag.Retailer
}

func (r *Router) Route(pageURL string) pricetag.Retailer {
	return r.RouteFn(pageURL)
}

var _ pricetag.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of pricetag.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn       func(retailer pricetag.Retailer) pricetag.SiteExtractor
	GetForURLFn func(pageURL string) pricetag.SiteExtractor
	RegisterFn  func(retailer pricetag.Retailer, extractor pricetag.SiteExtractor)
	ListFn      func() []pricetag.Retailer
}

func (r *ExtractorRegistry) Get(retailer pricetag.Retailer) pricetag.SiteExtractor {
	return r.GetFn(retailer)
}

func (r *ExtractorRegistry) GetForURL(pageURL string) pricetag.SiteExtractor {
	return r.GetForURLFn(pageURL)
}

func (r *ExtractorRegistry) Register(retailer pricetag.Retailer, extractor pricetag.SiteExtractor) {
	if r.RegisterFn != nil {
		r.RegisterFn(retailer, extractor)
	}
}

func (r *ExtractorRegistry) List() []pricetag.Retailer {
	if r.ListFn == nil {
		return nil
	}
	return r.ListFn()
}
