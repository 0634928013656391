package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lminimalist/promesse-finance-api/model"
	"github.com/lminimalist/promesse-finance-api/validator"
)

type AssetRepository struct {
	collection *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{
		collection: db.Collection(model.AssetCollectionName),
	}
}

// Get returns nil without error when the ticker has never been stored.
func (r *AssetRepository) Get(ctx context.Context, ticker string) (*model.Asset, error) {
	var asset model.Asset
	err := r.collection.FindOne(ctx, bson.M{"_id": ticker}).Decode(&asset)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &asset, nil
}

// Put upserts the full document in one write, so readers never observe a
// partially merged tail. Every bar is validated first; one bad bar
// rejects the whole write.
func (r *AssetRepository) Put(ctx context.Context, asset *model.Asset) error {
	if asset.Ticker == "" {
		return fmt.Errorf("asset has no ticker")
	}
	if err := validator.ValidateBars(asset.PriceHistory); err != nil {
		return fmt.Errorf("refusing to store %s: %w", asset.Ticker, err)
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": asset.Ticker}, asset, opts)
	return err
}

// ListTickers returns every stored ticker, for the scheduled refresher.
func (r *AssetRepository) ListTickers(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Ticker string `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tickers := make([]string, 0, len(docs))
	for _, d := range docs {
		tickers = append(tickers, d.Ticker)
	}
	return tickers, nil
}
