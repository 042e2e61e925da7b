package ports

import (
	"context"

	"marketplace-payments/internal/core/domain"
)

// PaymentProcessor is the external card/bank processor. Non-success answers
// are returned as *domain.ProcessorError; transport failures as plain errors.
type PaymentProcessor interface {
	InitializeTransaction(ctx context.Context, params domain.InitializeParams) (*domain.Checkout, error)
	CreateTransferRecipient(ctx context.Context, params domain.RecipientParams) (string, error)
	InitiateTransfer(ctx context.Context, params domain.TransferParams) (*domain.TransferResult, error)
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*domain.ResolvedAccount, error)
	ListBanks(ctx context.Context, currency string) ([]domain.Bank, error)
}
