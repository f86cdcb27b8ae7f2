package usecase

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/admin"
	"github.com/metaversus/goapi/domain/event"
	"github.com/metaversus/goapi/domain/nft"
)

type NftUseCaseCfg struct {
	TokenRepo   nft.TokenRepo
	HoldingRepo nft.HoldingRepo
	AdminUC     admin.Usecase
	EventRepo   event.Repo
	// shared mint contracts, one per token type
	Erc721Contract  domain.Address
	Erc1155Contract domain.Address
}

type impl struct {
	tokenRepo   nft.TokenRepo
	holdingRepo nft.HoldingRepo
	adminUC     admin.Usecase
	eventRepo   event.Repo
	contracts   map[domain.TokenType]domain.Address
}

func New(cfg *NftUseCaseCfg) nft.Usecase {
	return &impl{
		tokenRepo:   cfg.TokenRepo,
		holdingRepo: cfg.HoldingRepo,
		adminUC:     cfg.AdminUC,
		eventRepo:   cfg.EventRepo,
		contracts: map[domain.TokenType]domain.Address{
			domain.TokenType721:  cfg.Erc721Contract.ToLower(),
			domain.TokenType1155: cfg.Erc1155Contract.ToLower(),
		},
	}
}

func (im *impl) CreateNFT(c ctx.Ctx, caller domain.Address, typ domain.TokenType, to domain.Address, amount int64, uri string) (*nft.Token, error) {
	if err := im.requireAdmin(c, caller); err != nil {
		return nil, err
	}
	token, err := im.mint(c, typ, to, amount, uri, domain.EmptyAddress, 0)
	if err != nil {
		return nil, err
	}
	ev := event.New(event.TypeCreated, token.Contract, to, domain.EmptyAddress, "").
		WithField("tokenId", token.TokenId.String())
	if err := im.eventRepo.Insert(c, ev); err != nil {
		c.WithField("err", err).Error("eventRepo.Insert failed")
	}
	return token, nil
}

func (im *impl) CreateBatchNFT(c ctx.Ctx, caller domain.Address, typ domain.TokenType, to domain.Address, amounts []int64, uris []string) ([]*nft.Token, error) {
	return im.CreateBatchNFTWithRoyalties(c, caller, typ, to, amounts, uris, domain.EmptyAddress, 0)
}

func (im *impl) CreateBatchNFTWithRoyalties(c ctx.Ctx, caller domain.Address, typ domain.TokenType, to domain.Address, amounts []int64, uris []string, royaltyReceiver domain.Address, royaltyBps int64) ([]*nft.Token, error) {
	if err := im.requireAdmin(c, caller); err != nil {
		return nil, err
	}
	if len(amounts) == 0 || len(amounts) != len(uris) {
		return nil, domain.ErrInvalidLength
	}
	tokens := make([]*nft.Token, 0, len(amounts))
	ids := make([]string, 0, len(amounts))
	for i := range amounts {
		token, err := im.mint(c, typ, to, amounts[i], uris[i], royaltyReceiver, royaltyBps)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		ids = append(ids, token.TokenId.String())
	}
	ev := event.New(event.TypeBatchCreated, tokens[0].Contract, to, domain.EmptyAddress, "").
		WithField("tokenIds", ids)
	if err := im.eventRepo.Insert(c, ev); err != nil {
		c.WithField("err", err).Error("eventRepo.Insert failed")
	}
	return tokens, nil
}

func (im *impl) SetURI(c ctx.Ctx, caller domain.Address, contract domain.Address, tokenId domain.TokenId, uri string) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}
	id := nft.TokenIdentifier{Contract: contract, TokenId: tokenId}
	if err := im.tokenRepo.Patch(c, id, nft.TokenPatchable{Uri: &uri}); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("tokenRepo.Patch failed")
		return err
	}
	return nil
}

func (im *impl) URI(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (string, error) {
	token, err := im.tokenRepo.FindOne(c, nft.TokenIdentifier{Contract: contract, TokenId: tokenId})
	if err != nil {
		return "", err
	}
	return token.Uri, nil
}

func (im *impl) BalanceOf(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, owner domain.Address) (int64, error) {
	holding, err := im.holdingRepo.FindOne(c, nft.HoldingId{Contract: contract, TokenId: tokenId, Owner: owner})
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return holding.Balance, nil
}

func (im *impl) Transfer(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, from, to domain.Address, amount int64) error {
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	token, err := im.tokenRepo.FindOne(c, nft.TokenIdentifier{Contract: contract, TokenId: tokenId})
	if err != nil {
		return err
	}
	if token.Type == domain.TokenType721 {
		amount = 1
	} else if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	fromBalance, err := im.BalanceOf(c, contract, tokenId, from)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		return domain.ErrExceedAmount
	}
	toBalance, err := im.BalanceOf(c, contract, tokenId, to)
	if err != nil {
		return err
	}
	debited := &nft.Holding{Contract: contract, TokenId: tokenId, Owner: from, Balance: fromBalance - amount}
	if err := im.holdingRepo.Upsert(c, debited); err != nil {
		return err
	}
	credited := &nft.Holding{Contract: contract, TokenId: tokenId, Owner: to, Balance: toBalance + amount}
	if err := im.holdingRepo.Upsert(c, credited); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
			"to":      to,
		}).Error("holdingRepo.Upsert failed, rolling back debit")
		debited.Balance = fromBalance
		if rbErr := im.holdingRepo.Upsert(c, debited); rbErr != nil {
			c.WithField("err", rbErr).Error("rollback upsert failed")
		}
		return err
	}
	return nil
}

func (im *impl) RoyaltyInfo(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, salePrice decimal.Decimal) (domain.Address, decimal.Decimal, error) {
	token, err := im.tokenRepo.FindOne(c, nft.TokenIdentifier{Contract: contract, TokenId: tokenId})
	if err != nil {
		return domain.EmptyAddress, decimal.Zero, err
	}
	if token.RoyaltyReceiver.IsEmpty() || token.RoyaltyBps == 0 {
		return domain.EmptyAddress, decimal.Zero, nil
	}
	amount := salePrice.Mul(decimal.NewFromInt(token.RoyaltyBps)).Div(domain.FeeDenominator).Truncate(0)
	return token.RoyaltyReceiver, amount, nil
}

func (im *impl) IsRoyalty(c ctx.Ctx, contract domain.Address) (bool, error) {
	tokens, err := im.tokenRepo.FindByContract(c, contract)
	if err != nil {
		return false, err
	}
	for _, token := range tokens {
		if token.RoyaltyBps > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (im *impl) requireAdmin(c ctx.Ctx, caller domain.Address) error {
	isAdmin, err := im.adminUC.IsAdmin(c, caller)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domain.ErrCallerIsNotOwnerOrAdmin
	}
	return nil
}

func (im *impl) mint(c ctx.Ctx, typ domain.TokenType, to domain.Address, amount int64, uri string, royaltyReceiver domain.Address, royaltyBps int64) (*nft.Token, error) {
	if !typ.Valid() {
		return nil, domain.ErrBadParamInput
	}
	if to.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	if typ == domain.TokenType721 {
		amount = 1
	} else if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	contract := im.contracts[typ]
	next, err := im.tokenRepo.NextTokenId(c, contract)
	if err != nil {
		return nil, err
	}
	token := &nft.Token{
		Contract:        contract,
		TokenId:         domain.TokenId(strconv.FormatInt(next, 10)),
		Type:            typ,
		Uri:             uri,
		Creator:         to.ToLower(),
		RoyaltyReceiver: royaltyReceiver.ToLower(),
		RoyaltyBps:      royaltyBps,
		TotalSupply:     amount,
	}
	if err := im.tokenRepo.Insert(c, token); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": token.TokenId,
		}).Error("tokenRepo.Insert failed")
		return nil, err
	}
	holding := &nft.Holding{Contract: contract, TokenId: token.TokenId, Owner: to, Balance: amount}
	if err := im.holdingRepo.Upsert(c, holding); err != nil {
		c.WithField("err", err).Error("holdingRepo.Upsert failed")
		return nil, err
	}
	return token, nil
}
