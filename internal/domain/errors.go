package domain

import "errors"

// ErrProviderUnavailable — базовая (sentinel error) ошибка внешнего
// поискового провайдера. Адаптер оборачивает в неё любые сбои вызова
// (сеть, авторизация, квоты), HTTP-слой по ней выбирает статус 503.
var ErrProviderUnavailable = errors.New("search provider unavailable")
