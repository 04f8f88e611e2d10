package repositories

import "errors"

// ErrNotFound gorm.ErrRecordNotFound'un repository katmanındaki karşılığı.
// Servisler gorm'a bağımlı olmadan bu hatayı kontrol eder.
var ErrNotFound = errors.New("kayıt bulunamadı")
