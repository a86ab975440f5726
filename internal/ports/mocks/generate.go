//go:generate mockgen -source=../product_cache.go    -destination=./mock_product_cache.go    -package=mocks
//go:generate mockgen -source=../product_searcher.go -destination=./mock_product_searcher.go -package=mocks
//go:generate mockgen -source=../search_service.go   -destination=./mock_search_service.go   -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks

package mocks
