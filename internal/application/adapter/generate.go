package adapter

//go:generate mockgen -source=transaction_repository.go -destination=mocks/transaction_repository_mock.go -package=mocks
//go:generate mockgen -source=goal_repository.go -destination=mocks/goal_repository_mock.go -package=mocks
//go:generate mockgen -source=budget_repository.go -destination=mocks/budget_repository_mock.go -package=mocks
//go:generate mockgen -source=debt_repository.go -destination=mocks/debt_repository_mock.go -package=mocks
//go:generate mockgen -source=subscription_repository.go -destination=mocks/subscription_repository_mock.go -package=mocks
//go:generate mockgen -source=ai_service.go -destination=mocks/ai_service_mock.go -package=mocks
//go:generate mockgen -source=email_sender.go -destination=mocks/email_sender_mock.go -package=mocks
//go:generate mockgen -source=token_service.go -destination=mocks/token_service_mock.go -package=mocks
//go:generate mockgen -source=clock.go -destination=mocks/clock_mock.go -package=mocks
