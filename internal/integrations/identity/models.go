package identity

// Customer профиль клиента из identity-сервиса
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// rawProfile сырой ответ identity-сервиса
// Upstream менял схему несколько раз, поэтому имя клиента может прийти
// в одном из нескольких полей - нормализуем через displayName
type rawProfile struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	FirstName *string `json:"firstName"`
	FullName  *string `json:"full_name"`
	UserName  *string `json:"userName"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
}

// displayName возвращает имя клиента по фиксированному приоритету полей:
// name > firstName > full_name > userName > "Unknown Customer"
// Тотальная функция - всегда возвращает отображаемое имя
func (p *rawProfile) displayName() string {
	candidates := []*string{p.Name, p.FirstName, p.FullName, p.UserName}
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return "Unknown Customer"
}

// toCustomer конвертирует сырой профиль в нормализованную модель
func (p *rawProfile) toCustomer() *Customer {
	return &Customer{
		ID:    p.ID,
		Name:  p.displayName(),
		Email: p.Email,
		Role:  p.Role,
	}
}

// ErrorResponse модель ошибки от identity-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
