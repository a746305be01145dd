// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/naimlawani01/pharmav2-dashboard/internal/keychain"
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
	"github.com/naimlawani01/pharmav2-dashboard/internal/token"
)

// sessionCmd reports the local session artifacts: whether tokens are stored
// and, when the access token is a JWT, its expiry. No network call is made;
// only the backend can judge actual validity.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspecter l'état local de la session",

	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			fmt.Println("🔒 Trousseau indisponible, aucun jeton local.")
			return nil
		}

		access, err := km.LoadAccessToken()
		if err != nil || access == "" {
			fmt.Println("🔒 Aucun jeton de session enregistré.")
			return nil
		}
		fmt.Println("🔑 Jeton d'accès présent.")

		if info, err := token.Inspect(access); err == nil {
			if info.Expired(time.Now()) {
				fmt.Printf("⚠️  Expiré depuis %s ; la prochaine requête forcera la déconnexion.\n",
					info.ExpiresAt.Format(time.RFC1123))
			} else {
				fmt.Printf("⏳ Expire le %s.\n", info.ExpiresAt.Format(time.RFC1123))
			}
		}

		if _, err := km.LoadRefreshToken(); err == nil {
			fmt.Println("🔁 Jeton de rafraîchissement présent.")
		}
		if me := cachedIdentity(km); me != nil {
			fmt.Printf("👤 Dernier compte connecté : %s <%s>\n", me.Nom, me.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

// cacheIdentity stores the identity alongside the tokens so session status
// can name the account without a network call. Failures are ignored; the
// cache is cosmetic.
func cacheIdentity(me *pharmanet.Me) {
	km, err := keychain.GetManager()
	if err != nil {
		return
	}
	if data, err := json.Marshal(me); err == nil {
		_ = km.SaveSessionState(data)
	}
}

// cachedIdentity reads the identity stored at last login, if any.
func cachedIdentity(km *keychain.Manager) *pharmanet.Me {
	data, err := km.LoadSessionState()
	if err != nil || len(data) == 0 {
		return nil
	}
	var me pharmanet.Me
	if err := json.Unmarshal(data, &me); err != nil {
		return nil
	}
	return &me
}
