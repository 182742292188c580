package game

import (
	"strings"
	"testing"

	"github.com/campusopoly/backend/app/models"
)

func applyCard(s *Session, p *models.Player, card models.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyCardLocked(p, card)
}

func TestCardMoneyGainAndLoss(t *testing.T) {
	s, em := newTestSession("alice", "bob")
	p := s.players[0]

	applyCard(s, p, models.Card{Text: "gain", Action: models.CardMoney, Value: 100})
	if p.Balance != StartBalance+100 {
		t.Fatalf("expected +100, balance %d", p.Balance)
	}
	note, _ := em.last("game:notification")
	if !strings.Contains(note.args[0].(string), "Gained 100 $") {
		t.Fatalf("unexpected gain notification: %+v", note)
	}

	applyCard(s, p, models.Card{Text: "loss", Action: models.CardMoney, Value: -150})
	if p.Balance != StartBalance-50 {
		t.Fatalf("expected net -50, balance %d", p.Balance)
	}
	note, _ = em.last("game:notification")
	if !strings.Contains(note.args[0].(string), "Lost 150 $") {
		t.Fatalf("unexpected loss notification: %+v", note)
	}
}

func TestCardGlobalCollect(t *testing.T) {
	s, _ := newTestSession("alice", "bob", "carol", "dave")
	p := s.players[0]

	applyCard(s, p, models.Card{Action: models.CardGlobalCollect, Value: 10})

	if p.Balance != StartBalance+30 {
		t.Fatalf("expected +30 collected, balance %d", p.Balance)
	}
	for _, other := range s.players[1:] {
		if other.Balance != StartBalance-10 {
			t.Fatalf("expected %s to pay 10, balance %d", other.Name, other.Balance)
		}
	}
}

func TestCardMoveRelativeReplaysLanding(t *testing.T) {
	s, em := newTestSession("alice", "bob")
	p := s.players[0]
	p.Position = 10

	// Back 3 lands on the chance tile at 7; as a replay it must not draw.
	applyCard(s, p, models.Card{Action: models.CardMoveRelative, Value: -3})

	if p.Position != 7 {
		t.Fatalf("expected position 7, got %d", p.Position)
	}
	if em.count("game:card_drawn") != 0 {
		t.Fatal("a card effect must never draw another card")
	}
	moved, _ := em.last("game:moved")
	if len(moved.args[0].(MovedEvent).DiceResult) != 0 {
		t.Fatal("card moves carry no dice faces")
	}
}

func TestCardMoveRelativeWrapsNegative(t *testing.T) {
	s, _ := newTestSession("alice", "bob")
	p := s.players[0]
	p.Position = 1

	applyCard(s, p, models.Card{Action: models.CardMoveRelative, Value: -3})

	if p.Position != 38 {
		t.Fatalf("expected wrap to 38, got %d", p.Position)
	}
}

func TestCardMoveToJailSkipsResolution(t *testing.T) {
	s, em := newTestSession("alice", "bob")
	s.players[1].Properties = []int{} // nothing owned anywhere
	p := s.players[0]
	p.Position = 4

	applyCard(s, p, models.Card{Action: models.CardMoveTo, Value: JailIndex})

	if p.Position != JailIndex {
		t.Fatalf("expected jail position, got %d", p.Position)
	}
	if em.count("game:notification") != 0 {
		t.Fatal("the jail message is kept out of the notification feed")
	}
	if em.count("game:moved") != 1 {
		t.Fatal("the jail move itself must still broadcast")
	}
}

func TestCardMoveToBackwardPaysSalary(t *testing.T) {
	s, em := newTestSession("alice", "bob")
	p := s.players[0]
	p.Position = 30

	applyCard(s, p, models.Card{Action: models.CardMoveTo, Value: 0})

	if p.Position != 0 {
		t.Fatalf("expected position 0, got %d", p.Position)
	}
	if p.Balance != StartBalance+Salary {
		t.Fatalf("backward absolute move must credit the salary, balance %d", p.Balance)
	}
	note, _ := em.last("game:notification")
	if !strings.Contains(note.args[0].(string), "passes Start") {
		t.Fatalf("unexpected notification: %+v", note)
	}
}

func TestCardMoveToForwardResolvesLanding(t *testing.T) {
	s, em := newTestSession("alice", "bob")
	p := s.players[0]
	p.Position = 5

	applyCard(s, p, models.Card{Action: models.CardMoveTo, Value: 39})

	if p.Position != 39 {
		t.Fatalf("expected position 39, got %d", p.Position)
	}
	if p.Balance != StartBalance {
		t.Fatal("forward absolute move must not credit the salary")
	}
	offer, ok := em.last("game:allow_buy")
	if !ok || offer.target != "conn-0" {
		t.Fatal("landing on a free affordable tile must offer the purchase")
	}
}

func TestCardJail(t *testing.T) {
	s, em := newTestSession("alice", "bob")
	p := s.players[0]
	p.Position = 22

	applyCard(s, p, models.Card{Action: models.CardJail})

	if p.Position != JailIndex {
		t.Fatalf("expected jail position, got %d", p.Position)
	}
	if em.count("game:notification") != 0 {
		t.Fatal("the jail message is kept out of the notification feed")
	}
}

func TestCardNearestRailroadForward(t *testing.T) {
	s, _ := newTestSession("alice", "bob")
	p := s.players[0]
	p.Position = 7

	applyCard(s, p, models.Card{Action: models.CardNearestRailroad})

	if p.Position != 15 {
		t.Fatalf("expected the gate at 15, got %d", p.Position)
	}
	if p.Balance != StartBalance {
		t.Fatal("no salary without wrapping")
	}
}

func TestCardNearestRailroadWrapsWithSalary(t *testing.T) {
	s, em := newTestSession("alice", "bob")
	p := s.players[0]
	p.Position = 36

	applyCard(s, p, models.Card{Action: models.CardNearestRailroad})

	if p.Position != 5 {
		t.Fatalf("expected wrap to the first gate, got %d", p.Position)
	}
	if p.Balance != StartBalance+Salary {
		t.Fatalf("wrapping to the first gate credits the salary, balance %d", p.Balance)
	}
	note, _ := em.last("game:notification")
	if !strings.Contains(note.args[0].(string), "passes Start") {
		t.Fatalf("unexpected notification: %+v", note)
	}
}

func TestCardNearestRailroadPaysRentOnArrival(t *testing.T) {
	s, _ := newTestSession("alice", "bob")
	p, owner := s.players[0], s.players[1]
	owner.Properties = []int{15, 25}
	p.Position = 7

	applyCard(s, p, models.Card{Action: models.CardNearestRailroad})

	if got := StartBalance - p.Balance; got != 50 {
		t.Fatalf("expected 2-gate rent 50 on the replay landing, paid %d", got)
	}
}

func TestEveryCardEffectEndsWithSnapshot(t *testing.T) {
	cards := []models.Card{
		{Action: models.CardMoney, Value: 10},
		{Action: models.CardGlobalCollect, Value: 10},
		{Action: models.CardMoveRelative, Value: 2},
		{Action: models.CardMoveTo, Value: 20},
		{Action: models.CardJail},
		{Action: models.CardNearestRailroad},
	}
	for _, card := range cards {
		s, em := newTestSession("alice", "bob")
		applyCard(s, s.players[0], card)
		if em.count("game:init_state") == 0 {
			t.Fatalf("card %s must end with a snapshot broadcast", card.Action)
		}
	}
}

func TestDecksOnlyUseKnownActions(t *testing.T) {
	known := map[models.CardAction]bool{
		models.CardMoney:           true,
		models.CardGlobalCollect:   true,
		models.CardMoveRelative:    true,
		models.CardMoveTo:          true,
		models.CardJail:            true,
		models.CardNearestRailroad: true,
	}
	for _, deck := range [][]models.Card{chanceDeck, communityDeck} {
		if len(deck) == 0 {
			t.Fatal("decks must not be empty")
		}
		for _, card := range deck {
			if !known[card.Action] {
				t.Fatalf("unknown card action %q", card.Action)
			}
			if card.Text == "" {
				t.Fatal("cards must carry display text")
			}
		}
	}
}
