package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	charDomain "github.com/KirkDiggler/sparta-village/internal/domain/character"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
	"github.com/KirkDiggler/sparta-village/internal/logger"
	"github.com/KirkDiggler/sparta-village/internal/services"
)

// game is the menu loop around one character. Menus number entries from 1;
// 0 always goes back.
type game struct {
	provider *services.Provider
	slot     string
	in       *bufio.Scanner
	out      io.Writer
	char     *charDomain.Character
}

func (g *game) run(ctx context.Context) error {
	loaded, err := g.provider.CharacterService.LoadOrCreate(ctx, g.slot)
	if err != nil {
		return err
	}
	g.char = loaded.Character
	if loaded.Created && apperr.IsCorruptSave(loaded.Reason) {
		g.printf("저장 파일이 손상되어 새 캐릭터로 시작합니다.\n")
	}

	g.printf("스파르타 마을에 오신 여러분 환영합니다, %s.\n", g.char.Name)

	for {
		if ctx.Err() != nil {
			return g.save(ctx)
		}

		g.printf("\n1. 상태 보기\n2. 인벤토리\n3. 상점\n4. 던전 입장\n5. 휴식하기 (%d G)\n6. 저장하기\n0. 종료\n",
			charDomain.RestCost)

		choice, ok := g.choose(6)
		if !ok {
			return g.save(ctx)
		}

		switch choice {
		case 0:
			return g.save(ctx)
		case 1:
			g.status()
		case 2:
			g.inventory(ctx)
		case 3:
			g.shop(ctx)
		case 4:
			g.dungeon(ctx)
		case 5:
			g.rest(ctx)
		case 6:
			if err := g.save(ctx); err != nil {
				g.printf("저장에 실패했습니다: %v\n", err)
			}
		}
	}
}

func (g *game) status() {
	c := g.char
	g.printf("\n[상태 보기]\nLv. %02d\n%s ( %s )\n", c.Level, c.Name, c.Class)
	g.printf("공격력 : %d%s\n", c.EffectiveAttack(), bonus(c.EffectiveAttack()-c.Attack))
	g.printf("방어력 : %d%s\n", c.EffectiveDefense(), bonus(c.EffectiveDefense()-c.Defense))
	g.printf("체 력 : %d\nGold : %d G\n던전 클리어 : %d\n", c.Health, c.Gold, c.DungeonClears)
}

func (g *game) inventory(ctx context.Context) {
	for {
		g.printf("\n[인벤토리] 번호를 선택하면 장착/해제합니다.\n")
		g.listInventory()
		g.printf("0. 나가기\n")

		choice, ok := g.choose(g.char.ItemCount())
		if !ok || choice == 0 {
			return
		}

		index := choice - 1
		if g.provider.CharacterService.Unequip(ctx, g.char, index) {
			continue
		}
		if _, err := g.provider.CharacterService.Equip(ctx, g.char, index); err != nil {
			g.printf("장착할 수 없습니다: %v\n", err)
		}
	}
}

func (g *game) shop(ctx context.Context) {
	for {
		items := g.provider.ShopService.ListItems()

		g.printf("\n[상점] 보유 골드 %d G\n", g.char.Gold)
		for i, item := range items {
			g.printf("%d. %s | %d G\n", i+1, item.String(), item.Price)
		}
		g.printf("%d. 아이템 판매\n0. 나가기\n", len(items)+1)

		choice, ok := g.choose(len(items) + 1)
		if !ok || choice == 0 {
			return
		}

		if choice == len(items)+1 {
			g.sell(ctx)
			continue
		}

		item, err := g.provider.ShopService.Buy(ctx, g.char, choice-1)
		switch {
		case apperr.IsInsufficientGold(err):
			g.printf("Gold 가 부족합니다.\n")
		case err != nil:
			g.printf("구매할 수 없습니다: %v\n", err)
		default:
			g.printf("%s 을(를) 구매했습니다.\n", item.Name)
		}
	}
}

func (g *game) sell(ctx context.Context) {
	g.printf("\n[판매] 판매가는 정가의 85%% 입니다.\n")
	g.listInventory()
	g.printf("0. 취소\n")

	choice, ok := g.choose(g.char.ItemCount())
	if !ok || choice == 0 {
		return
	}

	sale, err := g.provider.ShopService.Sell(ctx, g.char, choice-1)
	if err != nil {
		g.printf("판매할 수 없습니다: %v\n", err)
		return
	}
	g.printf("%s 을(를) %d G 에 판매했습니다.\n", sale.Item.Name, sale.Payout)
}

func (g *game) dungeon(ctx context.Context) {
	tiers := g.provider.DungeonService.ListTiers()

	g.printf("\n[던전 입장]\n")
	for i, tier := range tiers {
		g.printf("%d. %s | 방어력 %d 이상 권장\n", i+1, tier.Name, tier.RecommendedDefense)
	}
	g.printf("0. 나가기\n")

	choice, ok := g.choose(len(tiers))
	if !ok || choice == 0 {
		return
	}

	outcome, err := g.provider.DungeonService.Enter(ctx, g.char, choice-1)
	if err != nil {
		g.printf("던전에 입장할 수 없습니다: %v\n", err)
		return
	}

	if !outcome.Success {
		g.printf("%s 공략에 실패했습니다.\n체력 %d -> %d\n", outcome.Tier.Name, outcome.HealthBefore, outcome.HealthAfter)
	} else {
		g.printf("축하합니다!! %s 을(를) 클리어 하였습니다.\n", outcome.Tier.Name)
		g.printf("체력 %d -> %d\nGold +%d G (%d%% 보너스)\n",
			outcome.HealthBefore, outcome.HealthAfter, outcome.TotalReward, outcome.RewardPercent)
		g.printf("레벨업! Lv. %d\n", g.char.Level)
	}
	if outcome.Defeated {
		g.printf("쓰러지기 직전입니다. 휴식이 필요합니다.\n")
	}
}

func (g *game) rest(ctx context.Context) {
	result, err := g.provider.CharacterService.Rest(ctx, g.char)
	if apperr.IsInsufficientGold(err) {
		g.printf("Gold 가 부족합니다.\n")
		return
	}
	if err != nil {
		g.printf("휴식할 수 없습니다: %v\n", err)
		return
	}
	g.printf("휴식을 완료했습니다. 체력 +%d (현재 %d)\n", result.Healed, result.Health)
}

func (g *game) save(ctx context.Context) error {
	// a canceled session still gets its final save
	if err := g.provider.CharacterService.Save(context.WithoutCancel(ctx), g.slot, g.char); err != nil {
		return err
	}
	g.printf("저장되었습니다.\n")
	logger.FromContext(ctx).Debug("session saved", "slot", g.slot)
	return nil
}

func (g *game) listInventory() {
	for i, item := range g.char.Items() {
		mark := ""
		if item.Equipped {
			mark = "[E]"
		}
		g.printf("%d. %s%s\n", i+1, mark, item.String())
	}
}

// choose reads a number in [0, limit]. It returns false once input ends.
func (g *game) choose(limit int) (int, bool) {
	for {
		g.printf("원하시는 행동을 입력해주세요.\n>> ")
		if !g.in.Scan() {
			return 0, false
		}

		n, err := strconv.Atoi(strings.TrimSpace(g.in.Text()))
		if err == nil && n >= 0 && n <= limit {
			return n, true
		}
		g.printf("잘못된 입력입니다.\n")
	}
}

func (g *game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

func bonus(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf(" (%+d)", n)
}
