package sheetsync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/myhttpclient"
	"github.com/aoigroupbuy/storefront/services/catalog"
)

// The spreadsheet endpoint only accepts plain text, JSON in the body.
// Anything else trips its CORS preflight.
const contentType = "text/plain;charset=utf-8"

type deleteAction struct {
	Action     string `json:"action"`
	ProductUID string `json:"id"`
}

type buyAction struct {
	Action     string `json:"action"`
	ProductUID string `json:"id"`
	Quantity   int    `json:"quantity"`
}

// Client talks to the spreadsheet web-app that acts as the shop's master
// data store and sales tally.
type Client struct {
	sheetURL string
	sender   myhttpclient.HTTPSender
}

func NewClient(sheetURL string, sender myhttpclient.HTTPSender) *Client {
	return &Client{
		sheetURL: sheetURL,
		sender:   sender,
	}
}

func (cl *Client) Fetch(c context.Context) ([]catalog.Product, error) {
	status, body, err := cl.sender.Send(c, http.MethodGet, cl.sheetURL, "", nil)
	if err != nil {
		return nil, myerrors.NewUnavailableError(fmt.Errorf("error fetching catalog: %s", err))
	}
	if status != http.StatusOK {
		return nil, myerrors.NewUnavailableError(fmt.Errorf("error fetching catalog: http status %d", status))
	}

	products := []catalog.Product{}
	err = json.Unmarshal(body, &products)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error parsing catalog: %s", err))
	}

	return products, nil
}

func (cl *Client) Upsert(c context.Context, product catalog.Product) error {
	return cl.post(c, product)
}

func (cl *Client) Delete(c context.Context, productUID string) error {
	return cl.post(c, deleteAction{
		Action:     "delete",
		ProductUID: productUID,
	})
}

// RecordPurchase bumps the sales tally of a product.
func (cl *Client) RecordPurchase(c context.Context, productUID string, quantity int) error {
	return cl.post(c, buyAction{
		Action:     "buy",
		ProductUID: productUID,
		Quantity:   quantity,
	})
}

func (cl *Client) post(c context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error serializing payload: %s", err))
	}

	status, _, err := cl.sender.Send(c, http.MethodPost, cl.sheetURL, contentType, body)
	if err != nil {
		return myerrors.NewUnavailableError(fmt.Errorf("error posting to sheet: %s", err))
	}
	if status != http.StatusOK {
		return myerrors.NewUnavailableError(fmt.Errorf("error posting to sheet: http status %d", status))
	}

	return nil
}
