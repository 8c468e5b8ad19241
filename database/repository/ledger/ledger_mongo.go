package ledgerRepo

import (
	"context"
	"fmt"
	"time"

	"dentora/database"
	"dentora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LedgerRepository persists fee postings and receipts for the billing service.
type LedgerRepository interface {
	InsertEntries(entries []models.LedgerEntry) error
	InsertReceipt(receipt *models.Receipt) error
	ListEntriesByAccount(accountID string) ([]models.LedgerEntry, error)
}

// MongoLedgerRepo implements LedgerRepository using MongoDB.
type MongoLedgerRepo struct {
	entryColl   *mongo.Collection
	receiptColl *mongo.Collection
}

// NewMongoLedgerRepo constructs a new instance of MongoLedgerRepo.
func NewMongoLedgerRepo() LedgerRepository {
	db := database.DB()
	return &MongoLedgerRepo{
		entryColl:   db.Collection("ledger_entries"),
		receiptColl: db.Collection("receipts"),
	}
}

// InsertEntries writes the offsetting ledger rows of one fee posting.
func (repo *MongoLedgerRepo) InsertEntries(entries []models.LedgerEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(entries))
	for i := range entries {
		docs[i] = entries[i]
	}
	if _, err := repo.entryColl.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error inserting ledger entries: %w", err)
	}
	return nil
}

// InsertReceipt records the outcome of a fee charge.
func (repo *MongoLedgerRepo) InsertReceipt(receipt *models.Receipt) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.receiptColl.InsertOne(ctx, receipt); err != nil {
		return fmt.Errorf("error inserting receipt: %w", err)
	}
	return nil
}

// ListEntriesByAccount fetches all postings against one account.
func (repo *MongoLedgerRepo) ListEntriesByAccount(accountID string) ([]models.LedgerEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.entryColl.Find(ctx, bson.M{"account_id": accountID})
	if err != nil {
		return nil, fmt.Errorf("error listing ledger entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.LedgerEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding ledger entries: %w", err)
	}
	return entries, nil
}
